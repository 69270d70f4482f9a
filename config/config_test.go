package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kastheco/navrail/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before all tests to set up the test environment
func TestMain(m *testing.M) {
	log.Initialize(false)
	code := m.Run()
	log.Close()
	os.Exit(code)
}

func TestDefaultConfig(t *testing.T) {
	t.Run("creates config with default values", func(t *testing.T) {
		config := DefaultConfig()

		assert.NotNil(t, config)
		assert.Equal(t, "nav.toml", config.TreeFile)
		assert.Equal(t, IconsUnicode, config.Icons)
		assert.Equal(t, 8, config.CellWidth)
		assert.Greater(t, config.WideWidth, config.RailWidth)
		assert.True(t, config.IsTelemetryEnabled())
		assert.True(t, config.IsWatchEnabled())
	})
}

func TestGetConfigDir(t *testing.T) {
	t.Run("returns valid config directory", func(t *testing.T) {
		tempHome := t.TempDir()
		t.Setenv("HOME", tempHome)

		configDir, err := GetConfigDir()

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(configDir, filepath.Join(".config", "navrail")))
		assert.True(t, filepath.IsAbs(configDir))
	})

	t.Run("migrates legacy .navrail to .config/navrail", func(t *testing.T) {
		tempHome := t.TempDir()
		t.Setenv("HOME", tempHome)

		oldDir := filepath.Join(tempHome, ".navrail")
		require.NoError(t, os.MkdirAll(oldDir, 0755))
		require.NoError(t, os.WriteFile(
			filepath.Join(oldDir, "config.json"),
			[]byte(`{"icons":"nerd"}`), 0644))

		configDir, err := GetConfigDir()
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(configDir, filepath.Join(".config", "navrail")))

		// Old dir should be gone
		_, err = os.Stat(oldDir)
		assert.True(t, os.IsNotExist(err))

		// New dir should contain the migrated file with original contents intact
		data, err := os.ReadFile(filepath.Join(configDir, "config.json"))
		require.NoError(t, err)
		assert.Equal(t, `{"icons":"nerd"}`, string(data))
	})

	t.Run("skips migration when .config/navrail already exists", func(t *testing.T) {
		tempHome := t.TempDir()
		t.Setenv("HOME", tempHome)

		newDir := filepath.Join(tempHome, ".config", "navrail")
		oldDir := filepath.Join(tempHome, ".navrail")
		require.NoError(t, os.MkdirAll(newDir, 0755))
		require.NoError(t, os.MkdirAll(oldDir, 0755))

		configDir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, newDir, configDir)

		// Old dir should still exist
		_, err = os.Stat(oldDir)
		assert.NoError(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("creates default config when file doesn't exist", func(t *testing.T) {
		tempHome := t.TempDir()
		t.Setenv("HOME", tempHome)

		config := LoadConfig()

		assert.Equal(t, DefaultConfig(), config)
		assert.FileExists(t, filepath.Join(tempHome, ".config", "navrail", ConfigFileName))
	})

	t.Run("loads valid config file", func(t *testing.T) {
		tempHome := t.TempDir()
		configDir := filepath.Join(tempHome, ".config", "navrail")
		require.NoError(t, os.MkdirAll(configDir, 0755))

		configContent := `{
			"tree_file": "/etc/navrail/tree.yaml",
			"icons": "nerd",
			"cell_width": 10,
			"rail_width": 6,
			"wide_width": 30,
			"telemetry_enabled": false
		}`
		require.NoError(t, os.WriteFile(filepath.Join(configDir, ConfigFileName), []byte(configContent), 0644))
		t.Setenv("HOME", tempHome)

		config := LoadConfig()

		assert.Equal(t, "/etc/navrail/tree.yaml", config.TreeFile)
		assert.Equal(t, IconsNerd, config.Icons)
		assert.Equal(t, 10, config.CellWidth)
		assert.Equal(t, 6, config.RailWidth)
		assert.Equal(t, 30, config.WideWidth)
		assert.False(t, config.IsTelemetryEnabled())
	})

	t.Run("normalizes bad values", func(t *testing.T) {
		tempHome := t.TempDir()
		configDir := filepath.Join(tempHome, ".config", "navrail")
		require.NoError(t, os.MkdirAll(configDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(configDir, ConfigFileName),
			[]byte(`{"icons":"emoji","cell_width":-1,"rail_width":4,"wide_width":2}`), 0644))
		t.Setenv("HOME", tempHome)

		config := LoadConfig()

		assert.Equal(t, IconsUnicode, config.Icons)
		assert.Equal(t, 8, config.CellWidth)
		assert.Equal(t, 4, config.RailWidth)
		assert.Equal(t, 28, config.WideWidth)
		assert.Equal(t, "nav.toml", config.TreeFile)
	})

	t.Run("returns default config on invalid JSON", func(t *testing.T) {
		tempHome := t.TempDir()
		configDir := filepath.Join(tempHome, ".config", "navrail")
		require.NoError(t, os.MkdirAll(configDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(configDir, ConfigFileName),
			[]byte(`{"invalid": json content}`), 0644))
		t.Setenv("HOME", tempHome)

		assert.Equal(t, DefaultConfig(), LoadConfig())
	})

	t.Run("TOML overlay wins", func(t *testing.T) {
		tempHome := t.TempDir()
		configDir := filepath.Join(tempHome, ".config", "navrail")
		require.NoError(t, os.MkdirAll(configDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(configDir, ConfigFileName),
			[]byte(`{"icons":"unicode","cell_width":8}`), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(configDir, TOMLConfigFileName),
			[]byte("icons = \"none\"\nwatch_tree = false\n\n[theme]\nselectedItem = \"#ff0000\"\n"), 0644))
		t.Setenv("HOME", tempHome)

		config := LoadConfig()

		assert.Equal(t, IconsNone, config.Icons)
		assert.False(t, config.IsWatchEnabled())
		assert.Equal(t, "#ff0000", config.Theme["selectedItem"])
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("saves config to file", func(t *testing.T) {
		tempHome := t.TempDir()
		t.Setenv("HOME", tempHome)

		off := false
		testConfig := DefaultConfig()
		testConfig.Icons = IconsNerd
		testConfig.WatchTree = &off

		require.NoError(t, SaveConfig(testConfig))

		configPath := filepath.Join(tempHome, ".config", "navrail", ConfigFileName)
		assert.FileExists(t, configPath)

		loadedConfig := LoadConfig()
		assert.Equal(t, IconsNerd, loadedConfig.Icons)
		assert.False(t, loadedConfig.IsWatchEnabled())
	})
}

func TestTreePath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg := DefaultConfig()
	p, err := cfg.TreePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempHome, ".config", "navrail", "nav.toml"), p)

	cfg.TreeFile = "/srv/nav.json"
	p, err = cfg.TreePath()
	require.NoError(t, err)
	assert.Equal(t, "/srv/nav.json", p)
}
