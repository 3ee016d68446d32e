package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/navkit/internal/domain/entity"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true,
}

// validateConfig collects every invalid value into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateNavigation(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateShortcuts(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateNavigation(config *Config) []string {
	var validationErrors []string
	if config.Navigation.StartPath != "" {
		if _, err := entity.ParsePath(config.Navigation.StartPath); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("navigation.start_path is invalid: %v", err))
		}
	}
	switch config.Navigation.Concurrency {
	case ConcurrencyReject, ConcurrencyQueue:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("navigation.concurrency must be %q or %q, got %q", ConcurrencyReject, ConcurrencyQueue, config.Navigation.Concurrency))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !validLogLevels[config.Logging.Level] {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled, got %q", config.Logging.Level))
	}
	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json, got %q", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateShortcuts(config *Config) []string {
	actions := make([]string, 0, len(config.Shortcuts))
	for action := range config.Shortcuts {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	var validationErrors []string
	for _, action := range actions {
		for _, k := range config.Shortcuts[action] {
			if strings.TrimSpace(k) == "" {
				validationErrors = append(validationErrors, fmt.Sprintf("shortcuts.%s contains an empty key", action))
				break
			}
		}
	}
	return validationErrors
}

// normalizeConfig lowercases enum-like values and fills empty ones.
func normalizeConfig(config *Config) {
	config.Navigation.StartPath = strings.TrimSpace(config.Navigation.StartPath)

	switch ConcurrencyMode(strings.ToLower(strings.TrimSpace(string(config.Navigation.Concurrency)))) {
	case "", ConcurrencyReject:
		config.Navigation.Concurrency = ConcurrencyReject
	case ConcurrencyQueue:
		config.Navigation.Concurrency = ConcurrencyQueue
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch config.Logging.Level {
	case "":
		config.Logging.Level = "info"
	case "warning":
		config.Logging.Level = "warn"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}

	if config.Shortcuts == nil {
		config.Shortcuts = map[string][]string{}
	}
}
