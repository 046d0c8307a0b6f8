package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sivukhin/jmh-samples/samples"
)

type Config struct {
	LogLevel       string
	LogDevelopment bool
	Keys           []string // nil when the built-in key list should be used
	Format         string
	Indent         int
}

// LoadEnvFile loads variables from path without overriding ones already set.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %v: %w", path, err)
	}
	return nil
}

func LoadConfig() Config {
	return Config{
		LogLevel:       StringEnv("LOG_LEVEL", "INFO"),
		LogDevelopment: BoolEnv("LOG_DEVELOPMENT", false),
		Keys:           ListEnv("SAMPLES_KEYS"),
		Format:         StringEnv("SAMPLES_FORMAT", "json"),
		Indent:         IntEnv("SAMPLES_INDENT", 4),
	}
}

// Registry builds the sample registry, listing the configured keys if any.
func (c Config) Registry() (*samples.Registry, error) {
	if c.Keys == nil {
		return samples.Default()
	}
	return samples.DefaultWithKeys(c.Keys)
}

func StringEnv(key string, def string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return value
}

func IntEnv(key string, def int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func BoolEnv(key string, def bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return parsed
}

// ListEnv splits a comma-separated variable. Unset gives nil, set but blank gives an empty list.
func ListEnv(key string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
