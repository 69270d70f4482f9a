package initcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kastheco/navrail/config"
	"github.com/kastheco/navrail/internal/initcmd/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	assert.False(t, opts.Force)
	assert.False(t, opts.Clean)
}

// TestApply verifies the post-form write path without running the
// interactive form.
func TestApply(t *testing.T) {
	dir := t.TempDir()
	state := wizard.NewState(nil)
	state.TreeFormat = config.FormatYAML
	state.Palette = "dawn"

	results, err := Apply(dir, state, false)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Created)
	assert.True(t, results[1].Created)
	assert.Equal(t, filepath.Join(dir, "nav.yaml"), results[1].Path)

	tc, err := config.LoadTOMLConfigFrom(filepath.Join(dir, config.TOMLConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "nav.yaml", tc.TreeFile)
	assert.Equal(t, "dawn", tc.Theme["palette"])

	groups, err := config.LoadTree(results[1].Path)
	require.NoError(t, err)
	assert.NotEmpty(t, groups)
}

func TestApply_KeepsExistingTree(t *testing.T) {
	dir := t.TempDir()
	treePath := filepath.Join(dir, "nav.toml")
	require.NoError(t, os.WriteFile(treePath, []byte("# mine\n"), 0o644))

	results, err := Apply(dir, wizard.NewState(nil), false)
	require.NoError(t, err)
	assert.False(t, results[1].Created)
	data, err := os.ReadFile(treePath)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(data))

	results, err = Apply(dir, wizard.NewState(nil), true)
	require.NoError(t, err)
	assert.True(t, results[1].Created)
	_, err = config.LoadTree(treePath)
	assert.NoError(t, err)
}
