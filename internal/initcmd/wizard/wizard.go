package wizard

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/kastheco/navrail/config"
	"github.com/kastheco/navrail/ui"
)

// State holds the values the setup form collects.
type State struct {
	TreeFormat string // toml, yaml or json
	// TreeFile is the existing tree file name; kept when its format still
	// matches TreeFormat.
	TreeFile  string
	Icons     string
	Palette   string // "" follows the terminal background
	RailWidth string
	WideWidth string
	WatchTree bool
	Telemetry bool
	SentryDSN string

	// theme carries slot overrides from the existing config through
	// untouched.
	theme map[string]string
}

const paletteKey = "palette"

// NewState returns the form defaults, taken from existing when non-nil.
func NewState(existing *config.TOMLConfig) *State {
	def := config.DefaultConfig()
	s := &State{
		TreeFormat: config.FormatTOML,
		Icons:      def.Icons,
		RailWidth:  strconv.Itoa(def.RailWidth),
		WideWidth:  strconv.Itoa(def.WideWidth),
		WatchTree:  true,
		Telemetry:  false,
	}
	if existing == nil {
		return s
	}

	if existing.TreeFile != "" {
		s.TreeFile = existing.TreeFile
		if format, err := config.FormatOf(existing.TreeFile); err == nil {
			s.TreeFormat = format
		}
	}
	if existing.Icons != "" {
		s.Icons = existing.Icons
	}
	if existing.RailWidth > 0 {
		s.RailWidth = strconv.Itoa(existing.RailWidth)
	}
	if existing.WideWidth > 0 {
		s.WideWidth = strconv.Itoa(existing.WideWidth)
	}
	if existing.WatchTree != nil {
		s.WatchTree = *existing.WatchTree
	}
	if existing.TelemetryEnabled != nil {
		s.Telemetry = *existing.TelemetryEnabled
	}
	s.SentryDSN = existing.SentryDSN
	for k, v := range existing.Theme {
		if k == paletteKey {
			s.Palette = v
			continue
		}
		if s.theme == nil {
			s.theme = make(map[string]string)
		}
		s.theme[k] = v
	}
	return s
}

// TreeFileName is the tree file the config will point at.
func (s *State) TreeFileName() string {
	if s.TreeFile != "" {
		if format, err := config.FormatOf(s.TreeFile); err == nil && format == s.TreeFormat {
			return s.TreeFile
		}
		base := strings.TrimSuffix(filepath.Base(s.TreeFile), filepath.Ext(s.TreeFile))
		return filepath.Join(filepath.Dir(s.TreeFile), base+"."+s.TreeFormat)
	}
	return "nav." + s.TreeFormat
}

// ToTOMLConfig converts the form values. Widths were validated by the form;
// an unparsable one is left unset.
func (s *State) ToTOMLConfig() *config.TOMLConfig {
	watch := s.WatchTree
	telemetry := s.Telemetry
	tc := &config.TOMLConfig{
		TreeFile:         s.TreeFileName(),
		Icons:            s.Icons,
		WatchTree:        &watch,
		TelemetryEnabled: &telemetry,
		SentryDSN:        strings.TrimSpace(s.SentryDSN),
	}
	tc.RailWidth, _ = strconv.Atoi(s.RailWidth)
	tc.WideWidth, _ = strconv.Atoi(s.WideWidth)

	if s.Palette != "" || len(s.theme) > 0 {
		tc.Theme = make(map[string]string, len(s.theme)+1)
		for k, v := range s.theme {
			tc.Theme[k] = v
		}
		if s.Palette != "" {
			tc.Theme[paletteKey] = s.Palette
		}
	}
	return tc
}

// validateWidth accepts whole numbers of at least lo columns.
func validateWidth(lo int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("enter a number of columns")
		}
		if n < lo {
			return fmt.Errorf("at least %d columns", lo)
		}
		return nil
	}
}

// validateWide also requires the wide sidebar to be wider than the rail.
func (s *State) validateWide(v string) error {
	if err := validateWidth(8)(v); err != nil {
		return err
	}
	wide, _ := strconv.Atoi(strings.TrimSpace(v))
	if rail, err := strconv.Atoi(strings.TrimSpace(s.RailWidth)); err == nil && wide <= rail {
		return fmt.Errorf("must be wider than the rail (%d)", rail)
	}
	return nil
}

// Form builds the setup form bound to s.
func Form(s *State, theme ui.Theme) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("navrail setup").
				Description("Writes config.toml and a starter navigation tree."),
			huh.NewSelect[string]().
				Title("tree file format").
				Options(
					huh.NewOption("TOML", config.FormatTOML),
					huh.NewOption("YAML", config.FormatYAML),
					huh.NewOption("JSON", config.FormatJSON),
				).
				Value(&s.TreeFormat),
			huh.NewSelect[string]().
				Title("rail icons").
				Description("nerd needs a patched font").
				Options(
					huh.NewOption("unicode", config.IconsUnicode),
					huh.NewOption("nerd font", config.IconsNerd),
					huh.NewOption("letters only", config.IconsNone),
				).
				Value(&s.Icons),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("slim rail width").
				Value(&s.RailWidth).
				Validate(validateWidth(3)),
			huh.NewInput().
				Title("wide sidebar width").
				Value(&s.WideWidth).
				Validate(s.validateWide),
			huh.NewSelect[string]().
				Title("palette").
				Options(
					huh.NewOption("follow terminal", ""),
					huh.NewOption("Rosé Pine Moon", "moon"),
					huh.NewOption("Rosé Pine Dawn", "dawn"),
				).
				Value(&s.Palette),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("reload the tree when the file changes?").
				Value(&s.WatchTree),
			huh.NewConfirm().
				Title("send crash reports?").
				Description("Only with a Sentry DSN of your own.").
				Value(&s.Telemetry),
			huh.NewInput().
				Title("sentry dsn").
				Placeholder("https://key@o0.ingest.sentry.io/0").
				Value(&s.SentryDSN),
		),
	).WithTheme(ui.FormTheme(theme))
}

// Run shows the form and fills s.
func Run(s *State, theme ui.Theme) error {
	if err := Form(s, theme).Run(); err != nil {
		return fmt.Errorf("setup form: %w", err)
	}
	return nil
}
