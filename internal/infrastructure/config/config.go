// Package config loads, validates and watches the navkit configuration.
package config

// Config represents the complete configuration for navkit.
type Config struct {
	Navigation NavigationConfig `mapstructure:"navigation" toml:"navigation" json:"navigation"`
	Popups     PopupsConfig     `mapstructure:"popups" toml:"popups" json:"popups"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	// Shortcuts rebinds keyboard actions, e.g. go_back = ["esc", "b"].
	Shortcuts map[string][]string `mapstructure:"shortcuts" toml:"shortcuts" json:"shortcuts,omitempty"`
}

// ConcurrencyMode selects how a navigation request arriving while another
// one runs is handled.
type ConcurrencyMode string

const (
	ConcurrencyReject ConcurrencyMode = "reject"
	ConcurrencyQueue  ConcurrencyMode = "queue"
)

// NavigationConfig controls the router.
type NavigationConfig struct {
	// StartPath is the path navigated to when the program starts.
	StartPath string `mapstructure:"start_path" toml:"start_path" json:"start_path" jsonschema:"default=//NavigationPage/HomePage"`
	// CaseInsensitiveNames matches page names regardless of case.
	CaseInsensitiveNames bool `mapstructure:"case_insensitive_names" toml:"case_insensitive_names" json:"case_insensitive_names"`
	Animated             bool `mapstructure:"animated" toml:"animated" json:"animated" jsonschema:"default=true"`
	// Concurrency is "reject" or "queue".
	Concurrency ConcurrencyMode `mapstructure:"concurrency" toml:"concurrency" json:"concurrency" jsonschema:"enum=reject,enum=queue,default=reject"`
}

// PopupsConfig controls the popup controller.
type PopupsConfig struct {
	Animated bool `mapstructure:"animated" toml:"animated" json:"animated" jsonschema:"default=true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	// File receives the logs while the terminal UI runs. Empty selects the
	// state directory.
	File       string `mapstructure:"file" toml:"file" json:"file,omitempty"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1,default=10"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0,default=3"`
}
