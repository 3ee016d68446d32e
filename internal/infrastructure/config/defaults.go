package config

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Navigation: NavigationConfig{
			StartPath:   "//NavigationPage/HomePage",
			Animated:    true,
			Concurrency: ConcurrencyReject,
		},
		Popups: PopupsConfig{
			Animated: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Shortcuts: map[string][]string{},
	}
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setNavigationDefaults(defaults)
	m.setPopupsDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.viper.SetDefault("shortcuts", defaults.Shortcuts)
}

func (m *Manager) setNavigationDefaults(defaults *Config) {
	m.viper.SetDefault("navigation.start_path", defaults.Navigation.StartPath)
	m.viper.SetDefault("navigation.case_insensitive_names", defaults.Navigation.CaseInsensitiveNames)
	m.viper.SetDefault("navigation.animated", defaults.Navigation.Animated)
	m.viper.SetDefault("navigation.concurrency", string(defaults.Navigation.Concurrency))
}

func (m *Manager) setPopupsDefaults(defaults *Config) {
	m.viper.SetDefault("popups.animated", defaults.Popups.Animated)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}
