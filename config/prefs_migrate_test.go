package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kastheco/navrail/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateLegacyPreferences_ImportsAndRemovesFile(t *testing.T) {
	dir := t.TempDir()

	data := `{"NavToggler.isNavCollapsed": "true", "NavToggler.showMore": "false"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "preferences.json"), []byte(data), 0644))

	store, err := NewSQLitePreferenceStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, MigrateLegacyPreferences(dir, store))

	v, _ := store.Get(nav.PrefCollapsed)
	assert.Equal(t, "true", v)
	v, _ = store.Get(nav.PrefShowMore)
	assert.Equal(t, "false", v)

	// JSON file should be removed
	_, err = os.Stat(filepath.Join(dir, "preferences.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestMigrateLegacyPreferences_KeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "preferences.json"),
		[]byte(`{"NavToggler.isNavCollapsed": "true"}`), 0644))

	store, err := NewSQLitePreferenceStore(":memory:")
	require.NoError(t, err)
	defer store.Close()
	store.Set(nav.PrefCollapsed, "false")

	require.NoError(t, MigrateLegacyPreferences(dir, store))
	v, _ := store.Get(nav.PrefCollapsed)
	assert.Equal(t, "false", v)
}

func TestMigrateLegacyPreferences_NoFileIsNoop(t *testing.T) {
	store, err := NewSQLitePreferenceStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	assert.NoError(t, MigrateLegacyPreferences(t.TempDir(), store)) // missing file is not an error
}

func TestMigrateLegacyPreferences_BadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "preferences.json"), []byte("{"), 0644))

	store, err := NewSQLitePreferenceStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	assert.Error(t, MigrateLegacyPreferences(dir, store))
	// The file is left for the user to fix.
	assert.FileExists(t, filepath.Join(dir, "preferences.json"))
}
