package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/navrail/keys"
)

var keyStyle = lipgloss.NewStyle().Foreground(ColorSubtle)

var descStyle = lipgloss.NewStyle().Foreground(ColorMuted)

var sepStyle = lipgloss.NewStyle().Foreground(ColorOverlay)

var separator = " • "

// Menu is the key hint line under the sidebar.
type Menu struct {
	help   help.Model
	keyMap keys.HelpMap
	width  int
}

func NewMenu() *Menu {
	h := help.New()
	h.ShortSeparator = separator
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = sepStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = sepStyle
	h.Styles.Ellipsis = sepStyle
	return &Menu{help: h}
}

// SetCollapsed switches the collapse hint between "collapse" and "expand".
func (m *Menu) SetCollapsed(collapsed bool) {
	m.keyMap.Collapsed = collapsed
}

// SetSize sets the width of the window. The menu is centered within it.
func (m *Menu) SetSize(width int) {
	m.width = width
	m.help.Width = width
}

func (m *Menu) String() string {
	content := m.help.View(m.keyMap)
	if m.width <= 0 {
		return content
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
}
