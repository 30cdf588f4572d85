// Package logging builds the zap loggers used by the cleaner.
package logging

import (
	"go.uber.org/zap"
)

// Config holds logging configuration.
type Config struct {
	Level      string
	Format     string // "console" or "json"
	OutputPath string // defaults to stderr
}

// New creates a structured logger. Console output uses zap's development
// encoder settings, json output the production ones. Unknown levels fall
// back to info.
func New(config Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if config.Format == "json" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	if config.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
	}

	zapConfig.OutputPaths = []string{"stderr"}
	if config.OutputPath != "" {
		zapConfig.OutputPaths = []string{config.OutputPath}
	}
	zapConfig.DisableStacktrace = true

	return zapConfig.Build()
}

// Must is New for callers that cannot handle a failure; it returns a no-op
// logger instead.
func Must(config Config) *zap.Logger {
	logger, err := New(config)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
