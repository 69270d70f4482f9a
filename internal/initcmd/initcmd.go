package initcmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kastheco/navrail/config"
	"github.com/kastheco/navrail/internal/initcmd/wizard"
	"github.com/kastheco/navrail/ui"
)

// Options holds the CLI flags for navrail setup.
type Options struct {
	Force bool // overwrite an existing tree file with the starter tree
	Clean bool // ignore existing config, start with factory defaults
}

// WriteResult tracks written files for the summary.
type WriteResult struct {
	Path    string
	Created bool // true=written, false=skipped (file already existed)
}

// Run executes the navrail setup workflow.
func Run(opts Options) error {
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}

	// Load existing config unless --clean
	var existing *config.TOMLConfig
	if !opts.Clean {
		existing, err = config.LoadTOMLConfig()
		if err != nil {
			fmt.Printf("Warning: could not load existing config: %v\n", err)
		}
	}

	state := wizard.NewState(existing)
	if err := wizard.Run(state, ui.DetectTheme(nil)); err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	fmt.Println("\nWriting files...")
	results, err := Apply(dir, state, opts.Force)
	if err != nil {
		return err
	}
	for _, r := range results {
		status := "OK"
		if !r.Created {
			status = "SKIP (exists)"
		}
		fmt.Printf("  %-50s %s\n", r.Path, status)
	}

	fmt.Println("\nDone! Run 'navrail' to start.")
	return nil
}

// Apply writes config.toml and, unless one exists and force is false, the
// starter tree into dir.
func Apply(dir string, state *wizard.State, force bool) ([]WriteResult, error) {
	tc := state.ToTOMLConfig()
	tomlPath := filepath.Join(dir, config.TOMLConfigFileName)
	if err := config.SaveTOMLConfigTo(tc, tomlPath); err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}
	results := []WriteResult{{Path: tomlPath, Created: true}}

	treePath := tc.TreeFile
	if !filepath.IsAbs(treePath) {
		treePath = filepath.Join(dir, treePath)
	}
	_, statErr := os.Stat(treePath)
	switch {
	case statErr == nil && !force:
		results = append(results, WriteResult{Path: treePath})
	case statErr == nil || errors.Is(statErr, os.ErrNotExist):
		if err := config.WriteTree(config.DefaultTree(), treePath); err != nil {
			return nil, fmt.Errorf("write tree: %w", err)
		}
		results = append(results, WriteResult{Path: treePath, Created: true})
	default:
		return nil, fmt.Errorf("check tree file: %w", statErr)
	}
	return results, nil
}
