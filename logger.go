package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger      = zap.NewNop().Sugar()
	AtomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
)

// LoggerConfig builds the console logger config. Development mode reports the
// caller of every entry and disables sampling, so no validation diagnostic is dropped.
func LoggerConfig(logLevel string, development bool) zap.Config {
	atomicLevel, err := zap.ParseAtomicLevel(logLevel)
	if err == nil {
		AtomicLevel.SetLevel(atomicLevel.Level())
	} else {
		log.Printf("failed to parse log level, fallback to INFO: %v", err)
		AtomicLevel.SetLevel(zap.InfoLevel)
	}

	encoder := zap.NewProductionEncoderConfig()
	encoder.MessageKey = "M"
	encoder.LevelKey = "L"
	encoder.TimeKey = "T"
	encoder.NameKey = "N"
	encoder.CallerKey = zapcore.OmitKey
	encoder.StacktraceKey = zapcore.OmitKey
	encoder.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder.EncodeDuration = zapcore.StringDurationEncoder

	config := zap.Config{
		Level:             AtomicLevel,
		Development:       development,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     encoder,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	if development {
		config.EncoderConfig.CallerKey = "C"
		config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	} else {
		config.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	}
	return config
}

// InitLogger replaces Logger with a console logger named after the tool.
func InitLogger(logLevel string, development bool) error {
	logger, err := LoggerConfig(logLevel, development).Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	Logger = logger.Named("jmh-samples").Sugar()
	return nil
}
