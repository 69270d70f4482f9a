package config

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/kastheco/navrail/log"
)

const (
	ConfigFileName = "config.json"
	appName        = "navrail"

	defaultTreeFile  = "nav.toml"
	defaultCellWidth = 8
	defaultRailWidth = 5
	defaultWideWidth = 28
)

// Icon sets understood by the ui package.
const (
	IconsNerd    = "nerd"
	IconsUnicode = "unicode"
	IconsNone    = "none"
)

// GetConfigDir returns the path to the application's configuration directory.
// Uses XDG-compliant ~/.config/navrail/. On first run, migrates the legacy
// ~/.navrail directory.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	newDir := filepath.Join(homeDir, ".config", appName)

	// Already exists — fast path
	if _, err := os.Stat(newDir); err == nil {
		return newDir, nil
	}

	oldDir := filepath.Join(homeDir, "."+appName)
	if _, err := os.Stat(oldDir); err == nil {
		// Ensure parent ~/.config/ exists
		if mkErr := os.MkdirAll(filepath.Dir(newDir), 0755); mkErr != nil {
			log.ErrorLog.Printf("failed to create %s: %v", filepath.Dir(newDir), mkErr)
			return oldDir, nil
		}
		if renameErr := os.Rename(oldDir, newDir); renameErr != nil {
			log.ErrorLog.Printf("failed to migrate %s to %s: %v", oldDir, newDir, renameErr)
			return oldDir, nil
		}
	}

	return newDir, nil
}

// Config represents the application configuration
type Config struct {
	// TreeFile is the navigation tree definition (.toml, .yaml or .json).
	// Relative paths resolve against the config directory.
	TreeFile string `json:"tree_file"`
	// Icons selects the glyph set for rail icons: nerd, unicode or none.
	Icons string `json:"icons"`
	// CellWidth is how many logical pixels one terminal column counts for
	// when deciding the initial mode.
	CellWidth int `json:"cell_width"`
	// RailWidth and WideWidth are the sidebar widths in columns.
	RailWidth int `json:"rail_width"`
	WideWidth int `json:"wide_width"`
	// PreferencesDB overrides the preference database location. Defaults to
	// the XDG data directory.
	PreferencesDB string `json:"preferences_db,omitempty"`
	// TelemetryEnabled controls whether crash reporting via Sentry is active.
	// Defaults to true when not set; nothing is sent without SentryDSN.
	TelemetryEnabled *bool  `json:"telemetry_enabled,omitempty"`
	SentryDSN        string `json:"sentry_dsn,omitempty"`
	// WatchTree reloads the tree when the file changes. Defaults to true.
	WatchTree *bool `json:"watch_tree,omitempty"`
	// Theme overrides slot colours, e.g. {"selectedItem": "#eb6f92"}.
	Theme map[string]string `json:"theme,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TreeFile:  defaultTreeFile,
		Icons:     IconsUnicode,
		CellWidth: defaultCellWidth,
		RailWidth: defaultRailWidth,
		WideWidth: defaultWideWidth,
	}
}

// IsTelemetryEnabled returns whether Sentry telemetry is enabled.
// Defaults to true when the field is not set.
func (c *Config) IsTelemetryEnabled() bool {
	if c.TelemetryEnabled == nil {
		return true
	}
	return *c.TelemetryEnabled
}

// IsWatchEnabled returns whether the tree file is watched for changes.
func (c *Config) IsWatchEnabled() bool {
	if c.WatchTree == nil {
		return true
	}
	return *c.WatchTree
}

// TreePath returns the absolute tree file path.
func (c *Config) TreePath() (string, error) {
	name := c.TreeFile
	if name == "" {
		name = defaultTreeFile
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// normalize fills zero values left by hand-edited files.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.TreeFile == "" {
		c.TreeFile = def.TreeFile
	}
	switch c.Icons {
	case IconsNerd, IconsUnicode, IconsNone:
	default:
		if c.Icons != "" {
			log.WarningLog.Printf("unknown icon set %q, using %s", c.Icons, def.Icons)
		}
		c.Icons = def.Icons
	}
	if c.CellWidth <= 0 {
		c.CellWidth = def.CellWidth
	}
	if c.RailWidth <= 0 {
		c.RailWidth = def.RailWidth
	}
	if c.WideWidth <= c.RailWidth {
		c.WideWidth = max(def.WideWidth, c.RailWidth+1)
	}
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}

	// Overlay TOML config if it exists (TOML wins for every field it sets)
	tomlResult, tomlErr := LoadTOMLConfig()
	if tomlErr != nil {
		log.WarningLog.Printf("failed to load TOML config: %v", tomlErr)
	} else if tomlResult != nil {
		tomlResult.applyTo(&config)
	}

	config.normalize()
	return &config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
