package cmd

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	json "github.com/goccy/go-json"
	"github.com/kastheco/navrail/app"
	"github.com/kastheco/navrail/config"
	"github.com/kastheco/navrail/nav"
	"github.com/kastheco/navrail/ui"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
)

var errModeConflict = errors.New("--collapsed and --wide are mutually exclusive")

// treeOptions are the flags of `navrail tree`.
type treeOptions struct {
	collapsed bool
	wide      bool
	showMore  bool
	selectKey string
	// open names a rail entry whose floating submenu is drawn open.
	open  string
	json  bool
	plain bool
}

var zonesOnce sync.Once

// ensureZones installs the global zone manager the sidebar marks rows with.
func ensureZones() {
	zonesOnce.Do(zone.NewGlobal)
}

// sessionPrefs copies the stored preferences into memory and applies the
// mode flags on top, so a one-shot render never writes anything back.
func sessionPrefs(stored nav.Preferences, opts treeOptions) (*nav.MemoryPreferences, error) {
	if opts.collapsed && opts.wide {
		return nil, errModeConflict
	}
	mem := nav.NewMemoryPreferences()
	if stored != nil {
		for _, key := range []string{nav.PrefCollapsed, nav.PrefShowMore} {
			if v, ok := stored.Get(key); ok {
				mem.Set(key, v)
			}
		}
	}
	switch {
	case opts.collapsed:
		mem.Set(nav.PrefCollapsed, "true")
	case opts.wide:
		mem.Set(nav.PrefCollapsed, "false")
	}
	if opts.showMore {
		mem.Set(nav.PrefShowMore, "true")
	}
	return mem, nil
}

// executeTreeRender renders groups once and returns the sidebar text, or the
// render tree as JSON. Exported for testing without cobra plumbing.
func executeTreeRender(groups []nav.Group, stored nav.Preferences, vp nav.Viewport, cfg *config.Config, opts treeOptions) (string, error) {
	prefs, err := sessionPrefs(stored, opts)
	if err != nil {
		return "", err
	}
	toggler := nav.NewToggler(prefs, vp, nav.WithSelectedKey(opts.selectKey))
	r := toggler.Render(groups, opts.selectKey)
	if opts.open != "" {
		if !r.Collapsed {
			return "", fmt.Errorf("--open needs the slim rail")
		}
		if r.Entry(opts.open) == nil {
			return "", fmt.Errorf("%q is not a rail entry", opts.open)
		}
		toggler.KeyDown(opts.open, nav.NewKeyEvent(nav.KeyCodeEnter))
		r = toggler.Render(groups, opts.selectKey)
	}

	if opts.json {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode render tree: %w", err)
		}
		return string(data) + "\n", nil
	}

	ensureZones()
	theme := app.ThemeFromConfig(cfg, ui.RosePineMoon)
	sb := ui.NewSidebar(ui.ClassNames(theme, app.SlotOverrides(cfg)), ui.Icons(cfg.Icons), cfg.RailWidth, cfg.WideWidth)
	out := sb.Render(&r)
	if p, ok := sb.ActivePanel(&r); ok {
		out = ui.PlaceOverlay(lipgloss.Width(out), p.Top, p.View, out)
	}
	out = zone.Scan(out)
	if opts.plain {
		out = ansi.Strip(out)
	}
	return out + "\n", nil
}

// NewTreeCmd builds the `navrail tree` command.
func NewTreeCmd() *cobra.Command {
	var opts treeOptions
	treeCmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Render the sidebar once to stdout",
		Long: `Render the navigation tree once, the way the interactive sidebar would
show it, and exit. Stored preferences decide the mode unless --collapsed or
--wide is given; nothing is written back.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			path, err := cfg.TreePath()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				path = args[0]
			}
			groups, err := config.LoadTree(path)
			if err != nil {
				return err
			}

			var stored nav.Preferences
			if store, err := config.OpenPreferenceStore(cfg); err == nil {
				defer store.Close()
				stored = store
			}

			vp := app.TerminalViewport{Fd: int(os.Stdout.Fd()), CellWidth: cfg.CellWidth}
			out, err := executeTreeRender(groups, stored, vp, cfg, opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	treeCmd.Flags().BoolVar(&opts.collapsed, "collapsed", false, "Render the slim icon rail")
	treeCmd.Flags().BoolVar(&opts.wide, "wide", false, "Render the wide sidebar")
	treeCmd.Flags().BoolVar(&opts.showMore, "show-more", false, "Reveal links hidden behind show more")
	treeCmd.Flags().StringVarP(&opts.selectKey, "select", "s", "", "Key of the selected link")
	treeCmd.Flags().StringVar(&opts.open, "open", "", "Rail entry whose submenu is drawn open")
	treeCmd.Flags().BoolVar(&opts.json, "json", false, "Print the render tree as JSON")
	treeCmd.Flags().BoolVar(&opts.plain, "plain", false, "Strip colours")
	return treeCmd
}
