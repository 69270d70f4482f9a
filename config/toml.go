package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// TOMLConfigFileName is the optional overlay read after config.json.
const TOMLConfigFileName = "config.toml"

// TOMLConfig is the hand-editable overlay. Unset fields leave config.json
// values alone.
type TOMLConfig struct {
	TreeFile         string            `toml:"tree_file,omitempty"`
	Icons            string            `toml:"icons,omitempty"`
	CellWidth        int               `toml:"cell_width,omitempty"`
	RailWidth        int               `toml:"rail_width,omitempty"`
	WideWidth        int               `toml:"wide_width,omitempty"`
	PreferencesDB    string            `toml:"preferences_db,omitempty"`
	TelemetryEnabled *bool             `toml:"telemetry_enabled,omitempty"`
	SentryDSN        string            `toml:"sentry_dsn,omitempty"`
	WatchTree        *bool             `toml:"watch_tree,omitempty"`
	Theme            map[string]string `toml:"theme,omitempty"`
}

// LoadTOMLConfig reads config.toml from the config directory. A missing file
// returns nil, nil.
func LoadTOMLConfig() (*TOMLConfig, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	tc, err := LoadTOMLConfigFrom(filepath.Join(dir, TOMLConfigFileName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return tc, err
}

// LoadTOMLConfigFrom reads and decodes the TOML overlay at path.
func LoadTOMLConfigFrom(path string) (*TOMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read toml config: %w", err)
	}
	var tc TOMLConfig
	if _, err := toml.Decode(string(data), &tc); err != nil {
		return nil, fmt.Errorf("parse toml config %s: %w", path, err)
	}
	return &tc, nil
}

// SaveTOMLConfigTo encodes tc to path, creating the parent directory.
func SaveTOMLConfigTo(tc *TOMLConfig, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tc); err != nil {
		return fmt.Errorf("encode toml config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func (tc *TOMLConfig) applyTo(c *Config) {
	if tc.TreeFile != "" {
		c.TreeFile = tc.TreeFile
	}
	if tc.Icons != "" {
		c.Icons = tc.Icons
	}
	if tc.CellWidth > 0 {
		c.CellWidth = tc.CellWidth
	}
	if tc.RailWidth > 0 {
		c.RailWidth = tc.RailWidth
	}
	if tc.WideWidth > 0 {
		c.WideWidth = tc.WideWidth
	}
	if tc.PreferencesDB != "" {
		c.PreferencesDB = tc.PreferencesDB
	}
	if tc.TelemetryEnabled != nil {
		c.TelemetryEnabled = tc.TelemetryEnabled
	}
	if tc.SentryDSN != "" {
		c.SentryDSN = tc.SentryDSN
	}
	if tc.WatchTree != nil {
		c.WatchTree = tc.WatchTree
	}
	if len(tc.Theme) > 0 {
		if c.Theme == nil {
			c.Theme = make(map[string]string, len(tc.Theme))
		}
		for k, v := range tc.Theme {
			c.Theme[k] = v
		}
	}
}
