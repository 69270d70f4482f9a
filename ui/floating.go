package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kastheco/navrail/nav"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
)

// Panel is a floating submenu ready to be placed next to the rail.
type Panel struct {
	Anchor string
	Node   *nav.Node
	// Hover is true when the panel is only shown because the mouse is over
	// its entry; the controller has nothing open.
	Hover bool
	View  string
	// Top is the line, relative to the top of the sidebar, the panel starts at.
	Top int
}

// ActivePanel returns the floating submenu to draw: the one the controller
// has open, else the hovered entry's. ok is false when there is none or the
// sidebar is wide.
func (s *Sidebar) ActivePanel(r *nav.Rendered) (Panel, bool) {
	if !r.Collapsed {
		return Panel{}, false
	}
	if open := r.OpenFloating(); len(open) > 0 {
		return s.panel(r, open[0], false), true
	}
	if s.hoverKey == "" {
		return Panel{}, false
	}
	entry := r.Entry(s.hoverKey)
	if entry == nil {
		return Panel{}, false
	}
	f := entry.Floating()
	if f == nil {
		return Panel{}, false
	}
	return s.panel(r, f, true), true
}

// PanelRows returns the links of a floating container as rows, title first.
func PanelRows(f *nav.Node) []Row {
	rows := make([]Row, 0, len(f.Children))
	for i := range f.Children {
		c := &f.Children[i]
		rows = append(rows, Row{Kind: RowLink, ZoneID: LinkZoneID(c.Key), Node: c, Line: i})
	}
	return rows
}

func (s *Sidebar) panel(r *nav.Rendered, f *nav.Node, hover bool) Panel {
	p := Panel{Anchor: f.Key, Node: f, Hover: hover, View: s.renderPanel(f)}
	if f.ScrollTop {
		return p
	}
	for _, row := range Rows(r) {
		if row.Kind == RowEntry && row.Node.Key == f.Key {
			// the panel border sits one line above its title
			p.Top = row.Line
			break
		}
	}
	if s.height > 0 {
		if over := p.Top + lipgloss.Height(p.View) - s.height; over > 0 {
			p.Top = max(p.Top-over, 0)
		}
	}
	return p
}

func (s *Sidebar) renderPanel(f *nav.Node) string {
	rows := PanelRows(f)
	width := 0
	for _, row := range rows {
		width = max(width, runewidth.StringWidth(row.Node.Text)+2*row.Node.Level+2)
	}
	width = min(width, s.wideWidth)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, zone.Mark(row.ZoneID, s.panelRow(row, width)))
	}
	return s.classes.Style(SlotFloatingPanel).Render(strings.Join(lines, "\n"))
}

func (s *Sidebar) panelRow(row Row, width int) string {
	n := row.Node
	if n.Level == 0 {
		line := padRight(runewidth.Truncate(n.Text, width, "…"), width)
		if s.isFocused(row.ZoneID) {
			return s.classes.Style(SlotFocusRing).Render(line)
		}
		return s.classes.Style(SlotFloatingTitle).Render(line)
	}

	bar := " "
	if n.Selected {
		bar = barGlyph
	}
	label := runewidth.Truncate(n.Text, max(width-2*n.Level, 1), "…")
	line := padRight(bar+strings.Repeat(" ", 2*n.Level-1)+label, width)
	switch {
	case s.isFocused(row.ZoneID):
		return s.classes.Style(SlotFocusRing).Render(ansi.Strip(line))
	case n.Selected:
		return s.classes.Style(SlotSelectedItem).Render(ansi.Strip(line))
	default:
		return s.classes.Style(SlotItem).Render(line)
	}
}

// PlaceOverlay draws fg over bg with its top-left corner at column x, line y.
// Lines of bg shorter than x are padded; bg grows when fg runs past its end.
func PlaceOverlay(x, y int, fg, bg string) string {
	if fg == "" {
		return bg
	}
	x, y = max(x, 0), max(y, 0)
	bgLines := strings.Split(bg, "\n")
	for i, fl := range strings.Split(fg, "\n") {
		row := y + i
		for row >= len(bgLines) {
			bgLines = append(bgLines, "")
		}
		bl := bgLines[row]
		if w := ansi.StringWidth(bl); w < x {
			bl += strings.Repeat(" ", x-w)
		}
		left := ansi.Truncate(bl, x, "")
		right := ansi.TruncateLeft(bl, x+ansi.StringWidth(fl), "")
		bgLines[row] = left + ansi.ResetStyle + fl + ansi.ResetStyle + right
	}
	return strings.Join(bgLines, "\n")
}
