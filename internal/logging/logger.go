// Package logging builds zerolog loggers and carries them through context.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig routes logs to a rotating file instead of stderr. The TUI
// enables it so log lines do not corrupt the terminal.
type FileConfig struct {
	Enabled       bool
	Path          string
	MaxSizeMB     int
	MaxBackups    int
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, out io.Writer) zerolog.Logger {
	output := out
	if cfg.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger that writes to the file described by fileCfg
// when enabled. The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled || fileCfg.Path == "" {
		if !fileCfg.WriteToStderr {
			return zerolog.Nop(), func() {}, nil
		}
		return New(cfg), func() {}, nil
	}

	file, err := OpenRotatingFile(fileCfg.Path, fileCfg.MaxSizeMB, fileCfg.MaxBackups)
	if err != nil {
		return New(cfg), func() {}, fmt.Errorf("open log file: %w", err)
	}

	var out io.Writer = file
	if fileCfg.WriteToStderr {
		out = zerolog.MultiLevelWriter(file, os.Stderr)
	}

	jsonCfg := cfg
	jsonCfg.Format = "json"
	cleanup := func() {
		_ = file.Close()
	}
	return newLogger(jsonCfg, out), cleanup, nil
}

// NewFromConfigValues creates a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// NAVKIT_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// NAVKIT_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("NAVKIT_LOG_LEVEL"), os.Getenv("NAVKIT_LOG_FORMAT"))
}
