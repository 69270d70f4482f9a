package config

import (
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// legacyPreferencesFile is the JSON file preferences lived in before the
// SQLite store.
const legacyPreferencesFile = "preferences.json"

// MigrateLegacyPreferences reads a legacy preferences.json from dir, imports
// every entry the store does not already hold, and removes the JSON file.
// If the file does not exist, it is a no-op.
func MigrateLegacyPreferences(dir string, store PreferenceStore) error {
	path := filepath.Join(dir, legacyPreferencesFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	for key, value := range entries {
		if _, ok := store.Get(key); ok {
			continue
		}
		store.Set(key, value)
	}

	return os.Remove(path)
}
