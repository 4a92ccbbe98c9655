// ABOUTME: Structured logger construction
// ABOUTME: Builds zap loggers from level, encoding and log file settings
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the logger
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json or console
	File   string // optional log file, appended to

	// Quiet drops stderr output, used while the TUI owns the terminal
	Quiet bool
}

// New builds a logger. With Quiet set and no File it returns a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	var outputs []string
	if !opts.Quiet {
		outputs = append(outputs, "stderr")
	}
	if opts.File != "" {
		outputs = append(outputs, opts.File)
	}
	if len(outputs) == 0 {
		return zap.NewNop(), nil
	}

	format := strings.ToLower(opts.Format)
	if format == "" {
		format = "console"
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(opts.Level))
	cfg.Encoding = format
	cfg.Sampling = nil
	cfg.OutputPaths = outputs
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "console" {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a level name to a zap level, defaulting to info
func ParseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}
