package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// MessageLevel colours a transient status message.
type MessageLevel int

const (
	MessageInfo MessageLevel = iota
	MessageWarning
	MessageError
)

// StatusBarData holds the contextual information displayed in the status bar.
type StatusBarData struct {
	Mode     string // "wide" or "slim"
	ShowMore bool
	Selected string // name of the selected link, empty when none
	URL      string
	TreeFile string

	Message      string
	MessageLevel MessageLevel
}

// StatusBar is the bottom status bar component.
type StatusBar struct {
	width int
	data  StatusBarData
}

// NewStatusBar creates a new StatusBar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetSize sets the terminal width for the status bar.
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetData updates the status bar content.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

func (s *StatusBar) Data() StatusBarData { return s.data }

var statusBarStyle = lipgloss.NewStyle().
	Background(ColorSurface).
	Foreground(ColorText).
	Padding(0, 1)

var statusBarAppNameStyle = lipgloss.NewStyle().
	Foreground(ColorIris).
	Background(ColorSurface).
	Bold(true)

var statusBarSepStyle = lipgloss.NewStyle().
	Foreground(ColorOverlay).
	Background(ColorSurface)

var statusBarModeStyle = lipgloss.NewStyle().
	Foreground(ColorFoam).
	Background(ColorSurface)

var statusBarSelectedStyle = lipgloss.NewStyle().
	Foreground(ColorText).
	Background(ColorSurface)

var statusBarURLStyle = lipgloss.NewStyle().
	Foreground(ColorPine).
	Background(ColorSurface)

var statusBarMutedStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Background(ColorSurface)

func messageStyle(level MessageLevel) lipgloss.Style {
	var fg lipgloss.TerminalColor
	switch level {
	case MessageWarning:
		fg = ColorGold
	case MessageError:
		fg = ColorLove
	default:
		fg = ColorSubtle
	}
	return lipgloss.NewStyle().Foreground(fg).Background(ColorSurface)
}

const statusBarSep = " │ "

func (s *StatusBar) String() string {
	if s.width < 10 {
		return ""
	}

	parts := make([]string, 0, 6)
	parts = append(parts, statusBarAppNameStyle.Render("navrail"))

	if s.data.Mode != "" {
		parts = append(parts, statusBarModeStyle.Render(s.data.Mode))
	}

	more := "less"
	if s.data.ShowMore {
		more = "more"
	}
	parts = append(parts, statusBarMutedStyle.Render(more))

	if s.data.Selected != "" {
		parts = append(parts, statusBarSelectedStyle.Render(s.data.Selected))
	}
	if s.data.URL != "" {
		parts = append(parts, statusBarURLStyle.Render(s.data.URL))
	}
	if s.data.Message != "" {
		parts = append(parts, messageStyle(s.data.MessageLevel).Render(s.data.Message))
	}

	sep := statusBarSepStyle.Render(statusBarSep)
	content := strings.Join(parts, sep)
	// padding takes two columns
	content = truncate.StringWithTail(content, uint(s.width-2), "…")

	return statusBarStyle.Width(s.width).Render(content)
}
