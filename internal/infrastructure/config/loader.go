package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// ManagerOptions configures a Manager.
type ManagerOptions struct {
	// ConfigFile forces an explicit file. It must exist.
	ConfigFile string
	// SearchPaths replaces the XDG config directory lookup.
	SearchPaths []string
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	explicit  bool
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager(opts ManagerOptions) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	explicit := opts.ConfigFile != ""
	if explicit {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(strings.TrimSuffix(configFileName, filepath.Ext(configFileName)))
		paths := opts.SearchPaths
		if len(paths) == 0 {
			configDir, err := GetConfigDir()
			if err != nil {
				return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
			}
			paths = []string{configDir, "."}
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
	}

	v.SetEnvPrefix("NAVKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "NAVKIT_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind NAVKIT_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "NAVKIT_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind NAVKIT_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		explicit:  explicit,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load reads the configuration from file and environment variables. A
// missing default file leaves the defaults in place.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if m.explicit {
		if _, err := os.Stat(m.viper.ConfigFileUsed()); err != nil {
			return fmt.Errorf("config file %s does not exist: %w", m.viper.ConfigFileUsed(), err)
		}
	}

	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configDir, _ := GetConfigDir()
		configFile = filepath.Join(configDir, configFileName)
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Shortcuts = make(map[string][]string, len(m.config.Shortcuts))
	for action, keys := range m.config.Shortcuts {
		configCopy.Shortcuts[action] = append([]string(nil), keys...)
	}
	return &configCopy
}

// ConfigFileUsed returns the path of the file that was read, if any.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// WriteDefault writes the default configuration to path unless it exists.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	v := viper.New()
	v.SetConfigType("toml")
	m := &Manager{viper: v}
	m.setDefaults()
	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
