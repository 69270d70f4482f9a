package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalKeyStringsMap_EveryNameHasBinding(t *testing.T) {
	for s, name := range GlobalKeyStringsMap {
		b, ok := GlobalkeyBindings[name]
		if assert.True(t, ok, "no binding for %q", s) {
			assert.Contains(t, b.Keys(), s)
		}
	}
}

func TestLookup(t *testing.T) {
	name, ok := Lookup("enter")
	assert.True(t, ok)
	assert.Equal(t, KeyEnter, name)

	name, ok = Lookup("[")
	assert.True(t, ok)
	assert.Equal(t, KeyCollapse, name)

	_, ok = Lookup("z")
	assert.False(t, ok)
}

func TestEnterAndSpaceAreDistinct(t *testing.T) {
	// Only enter carries the Enter key code into the navigation widget.
	assert.NotEqual(t, GlobalKeyStringsMap["enter"], GlobalKeyStringsMap[" "])
}

func TestHelpMap_CollapseLabel(t *testing.T) {
	short := HelpMap{}.ShortHelp()
	assert.Equal(t, "collapse", short[1].Help().Desc)

	short = HelpMap{Collapsed: true}.ShortHelp()
	assert.Equal(t, "expand", short[1].Help().Desc)
	// The shared binding is untouched.
	assert.Equal(t, "collapse", GlobalkeyBindings[KeyCollapse].Help().Desc)
}

func TestHelpMap_FullHelpCoversBindings(t *testing.T) {
	seen := make(map[string]bool)
	for _, col := range (HelpMap{}).FullHelp() {
		for _, b := range col {
			seen[b.Help().Key] = true
		}
	}
	for name, b := range GlobalkeyBindings {
		assert.True(t, seen[b.Help().Key], "binding %d missing from full help", name)
	}
}
