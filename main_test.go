package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_UsesSetupSubcommand(t *testing.T) {
	setupCmd, _, err := rootCmd.Find([]string{"init"})
	require.NoError(t, err)
	require.NotNil(t, setupCmd)
	require.Equal(t, "setup", setupCmd.Name())
}

func TestRootCommand_Subcommands(t *testing.T) {
	for _, name := range []string{"tree", "prefs", "history", "reset", "debug", "version"} {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
}

func TestRootCommand_SelectFlag(t *testing.T) {
	f := rootCmd.Flags().Lookup("select")
	require.NotNil(t, f)
	assert.Equal(t, "s", f.Shorthand)
}
