package app

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/navrail/config"
	"github.com/kastheco/navrail/config/auditlog"
	"github.com/kastheco/navrail/internal/sentry"
	"github.com/kastheco/navrail/log"
	"github.com/kastheco/navrail/nav"
	"github.com/kastheco/navrail/ui"
	zone "github.com/lrstanley/bubblezone"
	"golang.org/x/term"
)

// Options are the collaborators of one app session.
type Options struct {
	Config *config.Config
	Theme  ui.Theme

	Prefs nav.Preferences
	Audit auditlog.Logger

	Groups   []nav.Group
	TreePath string
	// TreeErr is shown on start when the tree file could not be loaded and
	// Groups holds the fallback tree.
	TreeErr error

	Viewport    nav.Viewport
	SelectedKey string
}

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config, selectedKey string) error {
	theme := ThemeFromConfig(cfg, ui.DetectTheme(nil))
	if term.IsTerminal(int(os.Stdout.Fd())) {
		restore := theme.PaintBackground(os.Stdout)
		defer restore()
	}

	opts, cleanup := openSession(cfg)
	defer cleanup()
	opts.Theme = theme
	opts.SelectedKey = selectedKey

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h := newHome(ctx, opts)
	if cfg.IsWatchEnabled() && opts.TreePath != "" {
		w, err := config.NewTreeWatcher(opts.TreePath)
		if err != nil {
			log.WarningLog.Printf("tree watch disabled: %v", err)
		} else {
			go w.Run(ctx)
			h.treeUpdates = w.Updates()
		}
	}

	zone.NewGlobal()
	p := tea.NewProgram(
		h,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // hover opens floating submenus visually
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

// openSession opens the preference store, audit log and tree for cfg. Every
// failure degrades to an in-memory or default stand-in so the UI still comes
// up; the returned cleanup closes whatever was opened.
func openSession(cfg *config.Config) (Options, func()) {
	opts := Options{Config: cfg, Viewport: TerminalViewport{Fd: int(os.Stdout.Fd()), CellWidth: cfg.CellWidth}}
	var closers []func() error

	store, err := config.OpenPreferenceStore(cfg)
	if err != nil {
		log.ErrorLog.Printf("preferences unavailable, using memory: %v", err)
		opts.Prefs = nav.NewMemoryPreferences()
	} else {
		opts.Prefs = store
		closers = append(closers, store.Close)
		if dir, dirErr := config.GetConfigDir(); dirErr == nil {
			if migErr := config.MigrateLegacyPreferences(dir, store); migErr != nil {
				log.WarningLog.Printf("legacy preference import failed: %v", migErr)
			}
		}
	}

	opts.Audit = auditlog.NopLogger()
	if dbPath, pathErr := config.PreferencesPath(cfg); pathErr == nil && dbPath != ":memory:" {
		if logger, logErr := auditlog.NewSQLiteLogger(dbPath); logErr != nil {
			log.WarningLog.Printf("nav history disabled: %v", logErr)
		} else {
			opts.Audit = logger
			closers = append(closers, logger.Close)
		}
	}

	if path, pathErr := cfg.TreePath(); pathErr != nil {
		opts.TreeErr = pathErr
	} else {
		opts.TreePath = path
		opts.Groups, opts.TreeErr = config.LoadOrCreateTree(path)
	}
	if opts.TreeErr != nil {
		log.ErrorLog.Printf("load tree %s: %v", opts.TreePath, opts.TreeErr)
		opts.Groups = config.DefaultTree().NavGroups()
	}

	return opts, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.WarningLog.Printf("close: %v", err)
			}
		}
	}
}

// ThemeFromConfig applies the "palette" entry of the theme overrides, when
// present, over the detected theme.
func ThemeFromConfig(cfg *config.Config, detected ui.Theme) ui.Theme {
	if cfg == nil {
		return detected
	}
	name, ok := cfg.Theme[paletteKey]
	if !ok {
		return detected
	}
	if t, ok := ui.ThemeByName(name); ok {
		return t
	}
	log.WarningLog.Printf("unknown palette %q, using %s", name, detected.Name)
	return detected
}

const paletteKey = "palette"

// SlotOverrides returns the theme overrides without the palette entry.
func SlotOverrides(cfg *config.Config) map[string]string {
	if cfg == nil || len(cfg.Theme) == 0 {
		return nil
	}
	out := make(map[string]string, len(cfg.Theme))
	for k, v := range cfg.Theme {
		if k != paletteKey {
			out[k] = v
		}
	}
	return out
}

type state int

const (
	stateDefault state = iota
	// stateHelp is the state when the help screen is displayed.
	stateHelp
)

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	appConfig *config.Config
	theme     ui.Theme
	prefs     nav.Preferences
	audit     auditlog.Logger
	treePath  string
	// treeUpdates delivers reloads from the file watcher; nil when not watching.
	treeUpdates <-chan config.TreeUpdate

	// -- State --

	groups []nav.Group
	// callerKey is the selection passed on the command line.
	callerKey string
	toggler   *nav.Toggler
	rendered  nav.Rendered
	state     state

	message      string
	messageLevel ui.MessageLevel

	// copyToClipboard is swapped out in tests.
	copyToClipboard func(string) error

	// -- UI Components --

	sidebar   *ui.Sidebar
	statusBar *ui.StatusBar
	menu      *ui.Menu
	helpView  string

	termWidth     int
	termHeight    int
	contentHeight int
}

func newHome(ctx context.Context, opts Options) *home {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme = ui.RosePineMoon
	}
	audit := opts.Audit
	if audit == nil {
		audit = auditlog.NopLogger()
	}
	prefs := opts.Prefs
	if prefs == nil {
		prefs = nav.NewMemoryPreferences()
	}

	h := &home{
		ctx:             ctx,
		appConfig:       cfg,
		theme:           theme,
		prefs:           prefs,
		audit:           audit,
		treePath:        opts.TreePath,
		groups:          opts.Groups,
		callerKey:       opts.SelectedKey,
		toggler:         nav.NewToggler(prefs, opts.Viewport, nav.WithSelectedKey(opts.SelectedKey)),
		state:           stateDefault,
		copyToClipboard: writeClipboard,
		sidebar: ui.NewSidebar(
			ui.ClassNames(theme, SlotOverrides(cfg)),
			ui.Icons(cfg.Icons),
			cfg.RailWidth,
			cfg.WideWidth,
		),
		statusBar: ui.NewStatusBar(),
		menu:      ui.NewMenu(),
	}
	h.sidebar.SetFocused(true)
	if opts.TreeErr != nil {
		h.setMessage(ui.MessageError, "tree: "+opts.TreeErr.Error())
	}
	h.rerender()
	h.sidebar.Focus(h.defaultFocus())
	return h
}

// updateHandleWindowSizeEvent sets the sizes of the components.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	// status bar and key hints take one line each
	chromeHeight := 2
	if msg.Height < 4 {
		chromeHeight = 0
	}
	m.termWidth = msg.Width
	m.termHeight = msg.Height
	m.contentHeight = max(msg.Height-chromeHeight, 1)

	m.sidebar.SetHeight(m.contentHeight)
	m.statusBar.SetSize(msg.Width)
	m.menu.SetSize(msg.Width)
}

func (m *home) Init() tea.Cmd {
	sentry.SetNavContext(m.toggler.Mode().String(), m.toggler.ShowMore(), m.treePath)
	return m.waitForTreeUpdate()
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case treeUpdateMsg:
		m.applyTreeUpdate(msg.update)
		if msg.fromWatcher {
			return m, m.waitForTreeUpdate()
		}
		return m, nil
	case helpRenderedMsg:
		if msg.err != nil {
			log.ErrorLog.Printf("render help: %v", msg.err)
			m.setMessage(ui.MessageError, "help unavailable")
			return m, nil
		}
		m.helpView = msg.rendered
		m.state = stateHelp
		return m, nil
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

func (m *home) View() string {
	if m.state == stateHelp {
		return zone.Scan(m.helpScreen())
	}

	side := m.sidebar.Render(&m.rendered)
	sideWidth := lipgloss.Width(side)
	body := lipgloss.JoinHorizontal(lipgloss.Top, side, m.contentView(max(m.termWidth-sideWidth, 0)))
	if p, ok := m.sidebar.ActivePanel(&m.rendered); ok {
		body = ui.PlaceOverlay(sideWidth, p.Top, p.View, body)
	}

	result := lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar.String(), m.menu.String())
	return zone.Scan(ui.FillHeight(result, m.termHeight))
}
