package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kastheco/navrail/nav"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	barGlyph      = "▌"
	railChevron   = "›"
	chevronOpen   = "▾"
	chevronClosed = "▸"
)

// RowKind is the kind of a sidebar line.
type RowKind int

const (
	RowToggle RowKind = iota
	RowHeader
	RowEntry
	RowLink
)

// Row is one line of the sidebar column or of a floating panel.
type Row struct {
	Kind RowKind
	// ZoneID is empty for headers, which are not focusable.
	ZoneID string
	Node   *nav.Node
	// Line is the row's offset inside the bordered block.
	Line int
}

// Rows lays out the sidebar column: the toggle control, then each group's
// header and entries. Expanded wide-mode children follow their parent.
func Rows(r *nav.Rendered) []Row {
	var rows []Row
	add := func(kind RowKind, id string, n *nav.Node) {
		rows = append(rows, Row{Kind: kind, ZoneID: id, Node: n, Line: len(rows)})
	}
	if r.Toggle != nil {
		add(RowToggle, ZoneToggle, r.Toggle)
	}
	var inline func(n *nav.Node)
	inline = func(n *nav.Node) {
		for i := range n.Children {
			c := &n.Children[i]
			if c.Kind != nav.NodeLink {
				continue
			}
			add(RowLink, LinkZoneID(c.Key), c)
			inline(c)
		}
	}
	for gi := range r.Groups {
		g := &r.Groups[gi]
		if g.Header != nil {
			add(RowHeader, "", g.Header)
		}
		for i := range g.Entries {
			e := &g.Entries[i]
			add(RowEntry, EntryZoneID(e.Key), e)
			inline(e)
		}
	}
	return rows
}

// FocusOrder returns the zone IDs of the focusable rows, top to bottom.
func FocusOrder(rows []Row) []string {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.ZoneID != "" {
			ids = append(ids, row.ZoneID)
		}
	}
	return ids
}

// Sidebar draws a rendered navigation tree as a terminal column.
type Sidebar struct {
	classes   ClassMap
	icons     IconMap
	railWidth int
	wideWidth int
	height    int

	focused bool
	// focusID is the zone ID of the keyboard-focused row.
	focusID string
	// hoverKey is the entry under the mouse. Its floating submenu is shown
	// without going through the controller.
	hoverKey string
}

// NewSidebar creates a sidebar. Widths include the border.
func NewSidebar(classes ClassMap, icons IconMap, railWidth, wideWidth int) *Sidebar {
	return &Sidebar{
		classes:   classes,
		icons:     icons,
		railWidth: max(railWidth, 3),
		wideWidth: max(wideWidth, 8),
	}
}

func (s *Sidebar) SetHeight(height int) {
	s.height = height
}

func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// Focus moves the keyboard focus to the row with zone ID id.
func (s *Sidebar) Focus(id string) {
	s.focusID = id
}

func (s *Sidebar) FocusID() string { return s.focusID }

func (s *Sidebar) SetHover(key string) {
	s.hoverKey = key
}

func (s *Sidebar) HoverKey() string { return s.hoverKey }

// Width is the outer width of the column in the given mode.
func (s *Sidebar) Width(collapsed bool) int {
	if collapsed {
		return s.railWidth
	}
	return s.wideWidth
}

// Render draws the column.
func (s *Sidebar) Render(r *nav.Rendered) string {
	inner := s.Width(r.Collapsed) - 2
	rows := Rows(r)

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.renderRow(row, r.Collapsed, inner))
	}

	root := s.classes.Style(SlotRoot).Width(inner)
	if s.height > 2 {
		root = root.Height(s.height - 2)
	}
	if s.focused {
		root = root.BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(s.classes.Style(SlotFocusRing).GetForeground())
	}
	return root.Render(b.String())
}

func (s *Sidebar) renderRow(row Row, slim bool, width int) string {
	n := row.Node
	if row.Kind == RowHeader {
		return s.classes.Style(SlotHeader).Render(headerLine(n.Text, width, slim))
	}

	var line string
	if row.Kind == RowToggle {
		line = s.toggleRow(n, slim, width)
	} else {
		line = s.itemRow(n, row.ZoneID, slim, width)
	}
	return zone.Mark(row.ZoneID, line)
}

func (s *Sidebar) toggleRow(n *nav.Node, slim bool, width int) string {
	icon := s.icons.Glyph(n.Icon, n.Label)
	var line string
	if slim {
		line = center(icon, width)
	} else {
		line = padRight(runewidth.Truncate(icon+" "+n.Text, width, "…"), width)
	}
	if s.isFocused(ZoneToggle) {
		return s.classes.Style(SlotFocusRing).Render(line)
	}
	return s.classes.Style(SlotToggle).Render(line)
}

func (s *Sidebar) itemRow(n *nav.Node, id string, slim bool, width int) string {
	icon := s.icons.Glyph(n.Icon, n.Label)

	var lead, rest string
	if slim {
		chev := " "
		if n.HasChildren {
			chev = railChevron
		}
		lead = center(icon, width-2)
		rest = chev
	} else {
		chev := "  "
		if n.Expanded != nil {
			chev = chevronClosed + " "
			if n.IsExpanded() {
				chev = chevronOpen + " "
			}
		}
		lead = strings.Repeat("  ", n.Level) + chev + icon
		avail := width - 1 - runewidth.StringWidth(lead) - 1
		label := ""
		if avail > 0 {
			label = runewidth.Truncate(n.Text, avail, "…")
		}
		rest = padRight(" "+label, width-1-runewidth.StringWidth(lead))
	}

	bar := " "
	if n.Selected {
		bar = barGlyph
	}
	switch {
	case s.isFocused(id):
		return s.classes.Style(SlotFocusRing).Render(bar + ansi.Strip(lead+rest))
	case n.Selected:
		return s.classes.Style(SlotBarMarker).Render(bar) +
			s.classes.Style(SlotSelectedItem).Width(width-1).Render(ansi.Strip(lead+rest))
	default:
		item := s.classes.Style(SlotItem)
		if slim {
			return item.Render(bar) + s.classes.Style(SlotIconColumn).Render(lead) + item.Render(rest)
		}
		return item.Render(bar + lead + rest)
	}
}

func (s *Sidebar) isFocused(id string) bool {
	return s.focused && id != "" && s.focusID == id
}

// headerLine renders "── name ──" across width in wide mode and a plain
// rule in the rail, where the name does not fit.
func headerLine(name string, width int, slim bool) string {
	if slim || width < 6 {
		return strings.Repeat("─", max(width, 0))
	}
	name = truncate.StringWithTail(name, uint(width-6), "…")
	line := "── " + name + " "
	if fill := width - runewidth.StringWidth(line); fill > 0 {
		line += strings.Repeat("─", fill)
	}
	return line
}

func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, max(width, 0), "")
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
