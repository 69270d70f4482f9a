package app

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/navrail/config"
	"github.com/kastheco/navrail/config/auditlog"
	"github.com/kastheco/navrail/internal/sentry"
	"github.com/kastheco/navrail/log"
	"github.com/kastheco/navrail/nav"
	"github.com/kastheco/navrail/ui"
	"github.com/mattn/go-runewidth"
)

func writeClipboard(s string) error {
	return clipboard.WriteAll(s)
}

// treeUpdateMsg carries a tree reload into Update.
type treeUpdateMsg struct {
	update      config.TreeUpdate
	fromWatcher bool
}

// waitForTreeUpdate blocks on the watcher channel. It returns nil when the
// app is not watching, and the resulting message is nil once the watcher
// has stopped.
func (m *home) waitForTreeUpdate() tea.Cmd {
	ch := m.treeUpdates
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return treeUpdateMsg{update: u, fromWatcher: true}
	}
}

// reloadTree reads the tree file again on request.
func (m *home) reloadTree() tea.Cmd {
	path := m.treePath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		groups, err := config.LoadTree(path)
		return treeUpdateMsg{update: config.TreeUpdate{Groups: groups, Err: err}}
	}
}

// applyTreeUpdate swaps in a reloaded tree. A failed reload keeps the
// previous tree on screen.
func (m *home) applyTreeUpdate(u config.TreeUpdate) {
	if u.Err != nil {
		m.setMessage(ui.MessageError, "tree: "+u.Err.Error())
		m.emit(auditlog.EventTreeError, "tree reload failed",
			auditlog.WithDetail(u.Err.Error()), auditlog.WithLevel("error"))
		return
	}
	m.groups = u.Groups
	m.rerender()
	m.setMessage(ui.MessageInfo, "tree reloaded")
	m.emit(auditlog.EventTreeReloaded, "tree reloaded")
}

// rerender runs a render pass and refreshes everything derived from it.
func (m *home) rerender() {
	m.rendered = m.toggler.Render(m.groups, m.callerKey)
	m.fixFocus()
	m.menu.SetCollapsed(m.rendered.Collapsed)
	m.statusBar.SetData(m.computeStatusBarData())
}

// transition runs fn against the toggler and records whatever it changed.
func (m *home) transition(fn func()) {
	before := m.toggler.State()
	fn()
	after := m.toggler.State()
	if before.Collapsed != after.Collapsed {
		// the hovered rail entry is gone
		m.sidebar.SetHover("")
	}
	m.rerender()
	m.recordTransition(before, after)
}

func (m *home) recordTransition(before, after nav.State) {
	mode := m.toggler.Mode().String()
	changed := false
	if before.Collapsed != after.Collapsed {
		changed = true
		if after.Collapsed {
			m.emit(auditlog.EventCollapsed, "sidebar collapsed")
		} else {
			m.emit(auditlog.EventExpanded, "sidebar expanded")
		}
	}
	if before.ShowMore != after.ShowMore {
		changed = true
		m.emit(auditlog.EventShowMoreToggled, fmt.Sprintf("show more %t", after.ShowMore))
	}
	if before.SelectedKey != after.SelectedKey && after.SelectedKey != "" {
		m.emit(auditlog.EventLinkSelected, "selected "+m.linkName(after.SelectedKey),
			auditlog.WithLink(after.SelectedKey))
	}
	if before.OpenAnchor != after.OpenAnchor {
		if before.OpenAnchor != "" {
			m.emit(auditlog.EventFloatingClosed, "submenu closed", auditlog.WithLink(before.OpenAnchor))
		}
		if after.OpenAnchor != "" {
			m.emit(auditlog.EventFloatingOpened, "submenu opened", auditlog.WithLink(after.OpenAnchor))
		}
	}
	if changed {
		log.InfoLog.Printf("nav: mode=%s showMore=%t", mode, after.ShowMore)
		sentry.SetNavContext(mode, after.ShowMore, m.treePath)
	}
}

// emit writes a history event stamped with the tree file and current mode.
func (m *home) emit(kind auditlog.EventKind, msg string, opts ...auditlog.EventOption) {
	if m.audit == nil {
		return
	}
	base := []auditlog.EventOption{
		auditlog.WithTree(m.treePath),
		auditlog.WithMode(m.toggler.Mode().String()),
	}
	m.audit.Emit(auditlog.NewEvent(kind, msg, append(base, opts...)...))
}

func (m *home) setMessage(level ui.MessageLevel, msg string) {
	m.message = msg
	m.messageLevel = level
	m.statusBar.SetData(m.computeStatusBarData())
}

func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.setMessage(ui.MessageError, err.Error())
	m.emit(auditlog.EventError, err.Error(), auditlog.WithLevel("error"))
	return nil
}

func (m *home) computeStatusBarData() ui.StatusBarData {
	data := ui.StatusBarData{
		Mode:         m.toggler.Mode().String(),
		ShowMore:     m.toggler.ShowMore(),
		TreeFile:     m.treePath,
		Message:      m.message,
		MessageLevel: m.messageLevel,
	}
	if link := nav.FindLink(m.groups, m.toggler.SelectedKey()); link != nil {
		data.Selected = link.Name
		data.URL = link.URL
	}
	return data
}

func (m *home) linkName(key string) string {
	if link := nav.FindLink(m.groups, key); link != nil && link.Name != "" {
		return link.Name
	}
	return key
}

// yank copies the URL of the focused link, or of the selection when focus
// is on the toggle control.
func (m *home) yank() {
	key, _ := ui.ZoneKey(m.sidebar.FocusID())
	if key == "" {
		key = m.toggler.SelectedKey()
	}
	link := nav.FindLink(m.groups, key)
	if link == nil || link.URL == "" {
		m.setMessage(ui.MessageWarning, "nothing to copy")
		return
	}
	if err := m.copyToClipboard(link.URL); err != nil {
		log.WarningLog.Printf("clipboard: %v", err)
		m.setMessage(ui.MessageError, "copy failed")
		return
	}
	m.setMessage(ui.MessageInfo, "copied "+link.URL)
	m.emit(auditlog.EventURLCopied, "copied url", auditlog.WithLink(key), auditlog.WithDetail(link.URL))
}

// linkPath returns the chain of links from a top-level link down to key.
func linkPath(groups []nav.Group, key string) []*nav.Link {
	if key == "" {
		return nil
	}
	var walk func(links []nav.Link, path []*nav.Link) []*nav.Link
	walk = func(links []nav.Link, path []*nav.Link) []*nav.Link {
		for i := range links {
			l := &links[i]
			next := append(path[:len(path):len(path)], l)
			if l.Key == key {
				return next
			}
			if found := walk(l.Children, next); found != nil {
				return found
			}
		}
		return nil
	}
	for gi := range groups {
		if groups[gi].IsToggle() {
			continue
		}
		if found := walk(groups[gi].Links, nil); found != nil {
			return found
		}
	}
	return nil
}

var (
	contentTitleStyle = lipgloss.NewStyle().Foreground(ui.ColorIris).Bold(true)
	contentCrumbStyle = lipgloss.NewStyle().Foreground(ui.ColorMuted)
	contentURLStyle   = lipgloss.NewStyle().Foreground(ui.ColorPine)
	contentBodyStyle  = lipgloss.NewStyle().Foreground(ui.ColorSubtle)
)

// contentView is the page area next to the sidebar: the selected link's
// breadcrumb, title and destination.
func (m *home) contentView(width int) string {
	if width <= 2 {
		return ""
	}
	style := lipgloss.NewStyle().Width(width).Padding(1, 2)
	if m.contentHeight > 0 {
		style = style.Height(m.contentHeight)
	}
	inner := max(width-4, 1)

	path := linkPath(m.groups, m.toggler.SelectedKey())
	if len(path) == 0 {
		return style.Render(contentBodyStyle.Render("nothing selected"))
	}
	leaf := path[len(path)-1]

	crumbs := make([]string, 0, len(path))
	for _, l := range path {
		crumbs = append(crumbs, l.Name)
	}
	title := leaf.Title
	if title == "" {
		title = leaf.Name
	}
	lines := []string{
		contentCrumbStyle.Render(runewidth.Truncate(strings.Join(crumbs, " › "), inner, "…")),
		"",
		contentTitleStyle.Render(runewidth.Truncate(title, inner, "…")),
	}
	if leaf.URL != "" {
		lines = append(lines, contentURLStyle.Render(runewidth.Truncate(leaf.URL, inner, "…")))
	}
	if leaf.Target != "" {
		lines = append(lines, contentBodyStyle.Render("opens in "+leaf.Target))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
