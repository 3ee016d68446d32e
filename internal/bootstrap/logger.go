package bootstrap

import (
	"github.com/rs/zerolog"

	"github.com/bnema/navkit/internal/infrastructure/config"
	"github.com/bnema/navkit/internal/logging"
)

// NewLogger builds the logger described by cfg. With toFile set, logs go
// to the rotating log file so they stay out of the terminal UI.
func NewLogger(cfg config.LoggingConfig, toFile bool) (zerolog.Logger, func(), error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Level)
	logCfg.Format = cfg.Format
	zerolog.SetGlobalLevel(logCfg.Level)

	if !toFile {
		return logging.New(logCfg), func() {}, nil
	}

	path := cfg.File
	if path == "" {
		var err error
		if path, err = config.GetLogFile(); err != nil {
			return logging.New(logCfg), func() {}, err
		}
	}
	return logging.NewWithFile(logCfg, logging.FileConfig{
		Enabled:    true,
		Path:       path,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	})
}
