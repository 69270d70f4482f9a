package cmd

import (
	"testing"

	"github.com/kastheco/navrail/config"
	"github.com/kastheco/navrail/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsGet(t *testing.T) {
	store := nav.NewMemoryPreferences(nav.PrefCollapsed, "true", nav.PrefShowMore, "yes")
	out := executePrefsGet(store)
	assert.Contains(t, out, "collapsed  true")
	assert.Contains(t, out, `show-more  "yes" (ignored)`)

	out = executePrefsGet(nav.NewMemoryPreferences())
	assert.Contains(t, out, "collapsed  (unset)")
}

func TestPrefsSet(t *testing.T) {
	store, err := config.NewSQLitePreferenceStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, executePrefsSet(store, "collapsed", "1"))
	v, ok := store.Get(nav.PrefCollapsed)
	require.True(t, ok)
	assert.Equal(t, "true", v)

	require.NoError(t, executePrefsSet(store, "show-more", "F"))
	v, _ = store.Get(nav.PrefShowMore)
	assert.Equal(t, "false", v)

	assert.Error(t, executePrefsSet(store, "collapsed", "maybe"))
	assert.Error(t, executePrefsSet(store, "theme", "true"))
}

func TestPrefsSet_DrivesNextStart(t *testing.T) {
	store := nav.NewMemoryPreferences()
	require.NoError(t, executePrefsSet(store, "collapsed", "true"))
	tg := nav.NewToggler(store, nav.FixedViewport(1920))
	assert.True(t, tg.Collapsed())
}
