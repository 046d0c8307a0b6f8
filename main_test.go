package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sivukhin/jmh-samples/samples"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, registry *samples.Registry, config Config, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(registry, config)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func defaultConfig() Config {
	return Config{LogLevel: "INFO", Format: "json", Indent: 4}
}

func TestKeysCmd(t *testing.T) {
	registry, err := samples.Default()
	require.Nil(t, err)
	out, err := execute(t, registry, defaultConfig(), "keys")
	require.Nil(t, err)
	require.Equal(t, "desktop_jdk8\ndesktop_jdk9\nnotebook_jdk8\nnotebook_jdk9\n", out)

	empty, err := samples.DefaultWithKeys([]string{})
	require.Nil(t, err)
	out, err = execute(t, empty, defaultConfig(), "keys")
	require.Nil(t, err)
	require.Equal(t, "", out)
}

func TestShowCmdJson(t *testing.T) {
	registry, err := samples.Default()
	require.Nil(t, err)
	out, err := execute(t, registry, defaultConfig(), "show", "desktop_jdk8")
	require.Nil(t, err)

	var results []samples.BenchmarkResult
	require.Nil(t, json.Unmarshal([]byte(out), &results))
	expected, _ := registry.Dataset("desktop_jdk8")
	require.Equal(t, expected, results)
	require.Contains(t, out, "\n    {\n        \"benchmark\"")
}

func TestShowCmdYaml(t *testing.T) {
	registry, err := samples.Default()
	require.Nil(t, err)
	out, err := execute(t, registry, defaultConfig(), "show", "notebook_jdk8", "--format", "yaml")
	require.Nil(t, err)

	var results []map[string]any
	require.Nil(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	require.Equal(t, "thrpt", results[0]["mode"])
	require.Equal(t, "ops/s", results[0]["primaryMetric"].(map[string]any)["scoreUnit"])
}

func TestShowCmdErrors(t *testing.T) {
	registry, err := samples.Default()
	require.Nil(t, err)
	_, err = execute(t, registry, defaultConfig(), "show", "nonexistent-key")
	require.True(t, errors.Is(err, samples.ErrUnknownKey))

	_, err = execute(t, registry, defaultConfig(), "show", "desktop_jdk8", "--format", "xml")
	require.ErrorContains(t, err, "unsupported output format")

	_, err = execute(t, registry, defaultConfig(), "show")
	require.NotNil(t, err)
}

func TestValidateCmd(t *testing.T) {
	registry, err := samples.Default()
	require.Nil(t, err)
	_, err = execute(t, registry, defaultConfig(), "validate")
	require.Nil(t, err)

	_, err = execute(t, registry, defaultConfig(), "validate", "desktop_jdk9", "missing")
	require.True(t, errors.Is(err, samples.ErrUnknownKey))

	results, _ := registry.Dataset("desktop_jdk8")
	results[0].PrimaryMetric.ScoreConfidence = []float64{2, 1}
	broken, err := samples.NewRegistry([]string{"broken"}, map[string][]samples.BenchmarkResult{"broken": results})
	require.Nil(t, err)
	_, err = execute(t, broken, defaultConfig(), "validate")
	require.ErrorContains(t, err, "dataset broken is malformed")
}
