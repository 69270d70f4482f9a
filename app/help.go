package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/navrail/keys"
	"github.com/kastheco/navrail/ui"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(ui.ColorIris)
	descStyle  = lipgloss.NewStyle().Foreground(ui.ColorMuted)
	helpBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorIris).
			Padding(0, 1)
)

// helpRenderedMsg carries the glamour output of the help screen.
type helpRenderedMsg struct {
	rendered string
	err      error
}

var helpSections = []string{"moving", "activating", "view", "app"}

// helpMarkdown documents the key bindings as markdown.
func helpMarkdown(collapsed bool) string {
	var b strings.Builder
	b.WriteString("# navrail\n\n")
	b.WriteString("The sidebar has two modes. **Wide** lists every link with its text; ")
	b.WriteString("**slim** is an icon rail whose parents open a floating submenu with ")
	b.WriteString("`enter`. Hovering a rail entry previews its submenu.\n\n")

	full := keys.HelpMap{Collapsed: collapsed}.FullHelp()
	for i, column := range full {
		title := fmt.Sprintf("keys %d", i+1)
		if i < len(helpSections) {
			title = helpSections[i]
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		b.WriteString("| key | action |\n|---|---|\n")
		for _, binding := range column {
			h := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString("Collapse and show-more survive restarts. `navrail reset` clears both.\n")
	return b.String()
}

// showHelp renders the help markdown off the update loop.
func (m *home) showHelp() tea.Cmd {
	md := helpMarkdown(m.toggler.Collapsed())
	style := "dark"
	if !m.theme.Dark {
		style = "light"
	}
	wrap := 72
	if m.termWidth > 0 {
		wrap = min(max(m.termWidth-8, 40), 100)
	}
	return func() tea.Msg {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return helpRenderedMsg{err: fmt.Errorf("could not create markdown renderer: %w", err)}
		}
		rendered, err := renderer.Render(md)
		if err != nil {
			return helpRenderedMsg{err: fmt.Errorf("could not render markdown: %w", err)}
		}
		return helpRenderedMsg{rendered: strings.TrimRight(rendered, "\n")}
	}
}

func (m *home) helpScreen() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("help"),
		m.helpView,
		descStyle.Render("press any key to close"),
	)
	box := helpBox.Render(content)
	if m.termWidth <= 0 || m.termHeight <= 0 {
		return box
	}
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, box)
}
