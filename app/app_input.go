package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kastheco/navrail/keys"
	"github.com/kastheco/navrail/nav"
	"github.com/kastheco/navrail/ui"
	zone "github.com/lrstanley/bubblezone"
)

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateHelp {
		// any key dismisses the help screen; q still quits
		m.state = stateDefault
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	name, ok := keys.Lookup(msg.String())
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m, tea.Quit
	case keys.KeyHelp:
		return m, m.showHelp()
	case keys.KeyUp:
		m.moveFocus(-1)
	case keys.KeyDown:
		m.moveFocus(1)
	case keys.KeyRight:
		m.focusInto()
	case keys.KeyLeft:
		m.focusOut()
	case keys.KeyEnter:
		m.activateFocused(nav.KeyCodeEnter)
	case keys.KeyClick:
		m.activateFocused(0)
	case keys.KeyCollapse:
		m.transition(func() { m.toggler.OnCollapseToggle(nav.NewClickEvent()) })
	case keys.KeyShowMore:
		m.transition(func() { m.toggler.OnShowMoreToggle(nav.NewClickEvent()) })
	case keys.KeyEsc:
		m.closeFloating()
	case keys.KeyYank:
		m.yank()
	case keys.KeyReload:
		return m, m.reloadTree()
	}
	return m, nil
}

// activateFocused delivers a key press to the focused row. code is
// nav.KeyCodeEnter for Enter and zero for space. Rail and wide entries get
// the raw key event first, then every row is activated as if clicked.
func (m *home) activateFocused(code int) {
	id := m.sidebar.FocusID()
	if id == ui.ZoneToggle {
		m.activateToggle(nav.NewKeyEvent(code))
		return
	}
	key, nested := ui.ZoneKey(id)
	if key == "" {
		return
	}
	m.transition(func() {
		if !nested {
			m.toggler.KeyDown(key, nav.NewKeyEvent(code))
		}
		m.toggler.Activate(key, nav.NewKeyEvent(code))
	})
}

func (m *home) activateToggle(ev *nav.Event) {
	if m.rendered.Toggle == nil {
		return
	}
	key := m.rendered.Toggle.Key
	m.transition(func() { m.toggler.Activate(key, ev) })
}

// closeFloating clears the open submenu and pulls focus back to its entry.
func (m *home) closeFloating() {
	anchor := m.toggler.State().OpenAnchor
	if anchor == "" {
		return
	}
	m.transition(m.toggler.CloseFloating)
	m.sidebar.Focus(ui.EntryZoneID(anchor))
}

// -- focus ring --

// activePanel is the floating submenu keyboard focus can move into: only
// one the controller opened, never a hover preview.
func (m *home) activePanel() (ui.Panel, bool) {
	p, ok := m.sidebar.ActivePanel(&m.rendered)
	if !ok || p.Hover {
		return ui.Panel{}, false
	}
	return p, true
}

// inPanel reports whether focus is on a link of the open floating submenu.
func (m *home) inPanel() bool {
	p, ok := m.activePanel()
	if !ok {
		return false
	}
	for _, id := range ui.FocusOrder(ui.PanelRows(p.Node)) {
		if id == m.sidebar.FocusID() {
			return true
		}
	}
	return false
}

// focusRing is the list focus moves through: the open submenu when focus is
// inside it, the sidebar column otherwise.
func (m *home) focusRing() []string {
	if m.inPanel() {
		p, _ := m.activePanel()
		return ui.FocusOrder(ui.PanelRows(p.Node))
	}
	return ui.FocusOrder(ui.Rows(&m.rendered))
}

func (m *home) moveFocus(delta int) {
	ring := m.focusRing()
	if len(ring) == 0 {
		return
	}
	idx := indexOf(ring, m.sidebar.FocusID())
	if idx < 0 {
		m.sidebar.Focus(ring[0])
		return
	}
	// wrap around at both ends
	idx = (idx + delta + len(ring)) % len(ring)
	m.sidebar.Focus(ring[idx])
}

// focusInto moves right: into the open submenu of the focused rail entry, or
// expands a collapsed wide-mode parent. A leaf's submenu holds only its title.
func (m *home) focusInto() {
	n := m.focusedNode()
	if n == nil {
		return
	}
	if m.rendered.Collapsed {
		p, ok := m.activePanel()
		if !ok || p.Anchor != n.Key || m.inPanel() {
			return
		}
		rows := ui.PanelRows(p.Node)
		// skip the title, it is the entry itself
		target := rows[0].ZoneID
		if len(rows) > 1 {
			target = rows[1].ZoneID
		}
		m.sidebar.Focus(target)
		return
	}
	if n.HasChildren && !n.IsExpanded() {
		m.activateFocused(0)
	}
}

// focusOut moves left: out of the submenu back to its rail entry, or
// collapses an expanded wide-mode parent.
func (m *home) focusOut() {
	if m.rendered.Collapsed {
		if p, ok := m.activePanel(); ok && m.inPanel() {
			m.sidebar.Focus(ui.EntryZoneID(p.Anchor))
		}
		return
	}
	if n := m.focusedNode(); n != nil && n.IsExpanded() {
		m.activateFocused(0)
	}
}

// focusedNode resolves the focused zone against the column and the open
// submenu.
func (m *home) focusedNode() *nav.Node {
	id := m.sidebar.FocusID()
	for _, row := range ui.Rows(&m.rendered) {
		if row.ZoneID == id {
			return row.Node
		}
	}
	if p, ok := m.activePanel(); ok {
		for _, row := range ui.PanelRows(p.Node) {
			if row.ZoneID == id {
				return row.Node
			}
		}
	}
	return nil
}

// fixFocus keeps focus on something that exists after a render. A link that
// vanished hands focus to the top-level entry holding it; anything else
// falls back to the default.
func (m *home) fixFocus() {
	id := m.sidebar.FocusID()
	if id == "" || m.focusedNode() != nil {
		return
	}
	if key, _ := ui.ZoneKey(id); key != "" {
		if m.rendered.Entry(key) != nil {
			m.sidebar.Focus(ui.EntryZoneID(key))
			return
		}
		if top := m.entryContaining(key); top != "" {
			m.sidebar.Focus(ui.EntryZoneID(top))
			return
		}
	}
	m.sidebar.Focus(m.defaultFocus())
}

// entryContaining returns the key of the top-level entry whose subtree holds
// key, or empty.
func (m *home) entryContaining(key string) string {
	path := linkPath(m.groups, key)
	if len(path) < 2 {
		return ""
	}
	top := path[0].Key
	if m.rendered.Entry(top) == nil {
		return ""
	}
	return top
}

// defaultFocus is the selected entry, else the first focusable row.
func (m *home) defaultFocus() string {
	ring := ui.FocusOrder(ui.Rows(&m.rendered))
	if len(ring) == 0 {
		return ""
	}
	for _, row := range ui.Rows(&m.rendered) {
		if row.Kind != ui.RowHeader && row.Node.Selected {
			return row.ZoneID
		}
	}
	return ring[0]
}

func indexOf(ids []string, id string) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}

// -- mouse --

func (m *home) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state != stateDefault {
		return m, nil
	}
	id := m.zoneAt(msg)
	m.hoverZone(id)

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.clickZone(id)
	return m, nil
}

// zoneAt returns the sidebar or submenu zone under the pointer, or empty.
func (m *home) zoneAt(msg tea.MouseMsg) string {
	// the submenu is drawn over the column, so it wins
	if p, ok := m.sidebar.ActivePanel(&m.rendered); ok {
		for _, row := range ui.PanelRows(p.Node) {
			if zone.Get(row.ZoneID).InBounds(msg) {
				return row.ZoneID
			}
		}
	}
	for _, row := range ui.Rows(&m.rendered) {
		if row.ZoneID != "" && zone.Get(row.ZoneID).InBounds(msg) {
			return row.ZoneID
		}
	}
	return ""
}

// hoverZone tracks the pointer. Entering a rail entry shows its submenu
// visually and clears its keyboard scroll flag; the pointer may then move
// into that submenu without it disappearing.
func (m *home) hoverZone(id string) {
	prev := m.sidebar.HoverKey()
	key, nested := ui.ZoneKey(id)
	if nested && m.rendered.Collapsed {
		if p, ok := m.sidebar.ActivePanel(&m.rendered); ok && p.Anchor == prev {
			return
		}
	}
	if nested || id == ui.ZoneToggle {
		key = ""
	}
	if key == prev {
		return
	}
	if prev != "" {
		m.toggler.Leave(prev)
	}
	if key != "" {
		m.toggler.Hover(key)
	}
	m.sidebar.SetHover(key)
	m.rendered = m.toggler.Render(m.groups, m.callerKey)
}

// clickZone activates the zone as a pointer click and moves focus there.
func (m *home) clickZone(id string) {
	if id == "" {
		return
	}
	m.sidebar.Focus(id)
	if id == ui.ZoneToggle {
		m.activateToggle(nav.NewClickEvent())
		return
	}
	key, _ := ui.ZoneKey(id)
	m.transition(func() { m.toggler.Activate(key, nav.NewClickEvent()) })
}
