package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Rosé Pine Moon palette
// https://rosepinetheme.com/palette/
var (
	// Base tones
	ColorBase    = lipgloss.Color("#232136")
	ColorSurface = lipgloss.Color("#2a273f")
	ColorOverlay = lipgloss.Color("#393552")
	ColorMuted   = lipgloss.Color("#6e6a86")
	ColorSubtle  = lipgloss.Color("#908caa")
	ColorText    = lipgloss.Color("#e0def4")

	// Semantic colors
	ColorLove = lipgloss.Color("#eb6f92") // error, danger
	ColorGold = lipgloss.Color("#f6c177") // warning
	ColorRose = lipgloss.Color("#ea9a97") // accent, secondary
	ColorPine = lipgloss.Color("#3e8fb0") // link
	ColorFoam = lipgloss.Color("#9ccfd8") // info, selection bar
	ColorIris = lipgloss.Color("#c4a7e7") // highlight, focus
)

// Theme is one palette the slot styles are built from.
type Theme struct {
	Name string
	Dark bool

	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color
	Muted   lipgloss.Color
	Subtle  lipgloss.Color
	Text    lipgloss.Color

	Love lipgloss.Color
	Gold lipgloss.Color
	Rose lipgloss.Color
	Pine lipgloss.Color
	Foam lipgloss.Color
	Iris lipgloss.Color
}

var RosePineMoon = Theme{
	Name:    "rose-pine-moon",
	Dark:    true,
	Base:    ColorBase,
	Surface: ColorSurface,
	Overlay: ColorOverlay,
	Muted:   ColorMuted,
	Subtle:  ColorSubtle,
	Text:    ColorText,
	Love:    ColorLove,
	Gold:    ColorGold,
	Rose:    ColorRose,
	Pine:    ColorPine,
	Foam:    ColorFoam,
	Iris:    ColorIris,
}

// RosePineDawn is the light variant, used on light terminal backgrounds.
var RosePineDawn = Theme{
	Name:    "rose-pine-dawn",
	Base:    lipgloss.Color("#faf4ed"),
	Surface: lipgloss.Color("#fffaf3"),
	Overlay: lipgloss.Color("#f2e9e1"),
	Muted:   lipgloss.Color("#9893a5"),
	Subtle:  lipgloss.Color("#797593"),
	Text:    lipgloss.Color("#575279"),
	Love:    lipgloss.Color("#b4637a"),
	Gold:    lipgloss.Color("#ea9d34"),
	Rose:    lipgloss.Color("#d7827e"),
	Pine:    lipgloss.Color("#286983"),
	Foam:    lipgloss.Color("#56949f"),
	Iris:    lipgloss.Color("#907aa9"),
}

// DetectTheme picks the palette matching the terminal background.
func DetectTheme(out *termenv.Output) Theme {
	if out == nil {
		out = termenv.DefaultOutput()
	}
	return themeFor(out.HasDarkBackground())
}

func themeFor(dark bool) Theme {
	if dark {
		return RosePineMoon
	}
	return RosePineDawn
}

// ThemeByName resolves "moon", "dawn" or a full theme name. Anything else
// reports false.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "moon", RosePineMoon.Name:
		return RosePineMoon, true
	case "dawn", RosePineDawn.Name:
		return RosePineDawn, true
	}
	return Theme{}, false
}

const (
	oscSetBackground   = "\x1b]11;%s\x1b\\"
	oscResetBackground = "\x1b]111\x1b\\"
)

// PaintBackground makes the theme base the terminal's default background, so
// a bare ANSI reset lands on the palette instead of the terminal's own
// colour. restore hands the terminal its default back. Nothing is written
// unless the base is a #rrggbb colour.
func (t Theme) PaintBackground(w io.Writer) (restore func()) {
	base := string(t.Base)
	if !isHexColor(base) {
		return func() {}
	}
	fmt.Fprintf(w, oscSetBackground, base)
	return func() { io.WriteString(w, oscResetBackground) }
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	return strings.Trim(strings.ToLower(s[1:]), "0123456789abcdef") == ""
}
