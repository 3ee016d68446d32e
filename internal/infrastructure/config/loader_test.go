package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), filePerm))
	return path
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "//NavigationPage/HomePage", mgr.viper.GetString("navigation.start_path"))
	assert.Equal(t, "reject", mgr.viper.GetString("navigation.concurrency"))
	assert.True(t, mgr.viper.GetBool("popups.animated"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	mgr, err := NewManager(ManagerOptions{SearchPaths: []string{t.TempDir()}})
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.Empty(t, mgr.ConfigFileUsed())
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[navigation]
start_path = "//NavigationPage/DetailsPage?id=3"
case_insensitive_names = true
concurrency = "QUEUE"

[popups]
animated = false

[logging]
level = "Debug"
format = "json"

[shortcuts]
go_back = ["esc", "b"]
`)
	mgr, err := NewManager(ManagerOptions{SearchPaths: []string{dir}})
	require.NoError(t, err)

	require.NoError(t, mgr.Load())
	cfg := mgr.Get()

	assert.Equal(t, "//NavigationPage/DetailsPage?id=3", cfg.Navigation.StartPath)
	assert.True(t, cfg.Navigation.CaseInsensitiveNames)
	assert.True(t, cfg.Navigation.Animated, "unset keys keep defaults")
	assert.Equal(t, ConcurrencyQueue, cfg.Navigation.Concurrency)
	assert.False(t, cfg.Popups.Animated)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"esc", "b"}, cfg.Shortcuts["go_back"])
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("NAVKIT_NAVIGATION_CONCURRENCY", "queue")
	t.Setenv("NAVKIT_LOG_LEVEL", "warn")

	mgr, err := NewManager(ManagerOptions{SearchPaths: []string{t.TempDir()}})
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, ConcurrencyQueue, mgr.Get().Navigation.Concurrency)
	assert.Equal(t, "warn", mgr.Get().Logging.Level)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	mgr, err := NewManager(ManagerOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
	require.NoError(t, err)

	err = mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[navigation]
start_path = "///"
concurrency = "parallel"
`)
	mgr, err := NewManager(ManagerOptions{ConfigFile: path})
	require.NoError(t, err)

	err = mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "navigation.start_path")
	assert.Contains(t, err.Error(), "navigation.concurrency")
}

func TestGet_ReturnsCopy(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[shortcuts]\nquit = [\"q\"]\n")
	mgr, err := NewManager(ManagerOptions{SearchPaths: []string{dir}})
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Shortcuts["quit"][0] = "x"
	cfg.Navigation.StartPath = "changed"

	assert.Equal(t, []string{"q"}, mgr.Get().Shortcuts["quit"])
	assert.NotEqual(t, "changed", mgr.Get().Navigation.StartPath)
}

func TestReload_NotifiesAndKeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[navigation]\nconcurrency = \"reject\"\n")
	mgr, err := NewManager(ManagerOptions{ConfigFile: path})
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var seen []ConcurrencyMode
	mgr.OnConfigChange(func(c *Config) { seen = append(seen, c.Navigation.Concurrency) })

	writeConfig(t, dir, "[navigation]\nconcurrency = \"queue\"\n")
	require.NoError(t, mgr.Reload())

	writeConfig(t, dir, "[navigation]\nconcurrency = \"bogus\"\n")
	require.Error(t, mgr.Reload())

	assert.Equal(t, []ConcurrencyMode{ConcurrencyQueue}, seen)
	assert.Equal(t, ConcurrencyQueue, mgr.Get().Navigation.Concurrency)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[navigation]\nanimated = true\n")
	mgr, err := NewManager(ManagerOptions{ConfigFile: path})
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	changed := make(chan *Config, 4)
	mgr.OnConfigChange(func(c *Config) { changed <- c })
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "second call is a no-op")

	writeConfig(t, dir, "[navigation]\nanimated = false\n")

	select {
	case c := <-changed:
		assert.False(t, c.Navigation.Animated)
	case <-time.After(5 * time.Second):
		t.Fatal("config change not observed")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", configFileName)

	require.NoError(t, WriteDefault(path))
	require.Error(t, WriteDefault(path), "existing file is kept")

	mgr, err := NewManager(ManagerOptions{ConfigFile: path})
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	assert.Equal(t, DefaultConfig().Navigation, mgr.Get().Navigation)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "navkit configuration", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "navigation")
	assert.Contains(t, props, "logging")
	assert.Contains(t, props, "shortcuts")
}
