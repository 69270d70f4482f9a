package ui

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kastheco/navrail/nav"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// plain drops zone markers and styling.
func plain(s string) string {
	return ansi.Strip(zone.Scan(s))
}

func testGroups() []nav.Group {
	return []nav.Group{
		{GroupType: nav.GroupTypeToggle, Links: []nav.Link{
			{Key: "toggle", Name: "Expand", AlternateText: "Collapse", Icon: "menu"},
		}},
		{Name: "Main", Links: []nav.Link{
			{Key: "home", Name: "Home", Icon: "home", URL: "/home"},
			{Key: "docs", Name: "Docs", Icon: "folder", Children: []nav.Link{
				{Key: "guide", Name: "Guide", URL: "/docs/guide"},
				{Key: "api", Name: "API Reference", URL: "/docs/api"},
			}},
		}},
		{Name: "Admin", Links: []nav.Link{
			{Key: "settings", Name: "Settings", Icon: "gear"},
			{Key: "audit", Name: "Audit", IsHidden: true},
			{Key: "more", Name: "Show more", AlternateText: "Show less", Icon: "more", IsShowMoreLink: true},
		}},
	}
}

func newTestSidebar() *Sidebar {
	return NewSidebar(ClassNames(RosePineMoon, nil), Icons(IconSetUnicode), 5, 28)
}

func render(collapsed bool, selected string) (*nav.Toggler, nav.Rendered) {
	prefs := nav.NewMemoryPreferences(nav.PrefCollapsed, strconv.FormatBool(collapsed))
	tg := nav.NewToggler(prefs, nil)
	return tg, tg.Render(testGroups(), selected)
}

func TestRows_WideLayout(t *testing.T) {
	_, r := render(false, "guide")
	rows := Rows(&r)

	kinds := make([]RowKind, 0, len(rows))
	for i, row := range rows {
		assert.Equal(t, i, row.Line)
		kinds = append(kinds, row.Kind)
	}
	assert.Equal(t, []RowKind{
		RowToggle, RowEntry, RowEntry, RowLink, RowLink, RowHeader, RowEntry, RowEntry,
	}, kinds)

	assert.Equal(t, []string{
		ZoneToggle,
		EntryZoneID("home"),
		EntryZoneID("docs"),
		LinkZoneID("guide"),
		LinkZoneID("api"),
		EntryZoneID("settings"),
		EntryZoneID("more"),
	}, FocusOrder(rows))
}

func TestRows_SlimHasNoInlineChildren(t *testing.T) {
	_, r := render(true, "guide")
	for _, row := range Rows(&r) {
		assert.NotEqual(t, RowLink, row.Kind, "floating links belong to the panel, not the rail")
	}
}

func TestSidebar_RenderWide(t *testing.T) {
	sb := newTestSidebar()
	_, r := render(false, "guide")

	out := sb.Render(&r)
	text := plain(out)
	assert.Equal(t, 28, lipgloss.Width(out))
	assert.Contains(t, text, "Collapse")
	assert.Contains(t, text, "── Admin ")
	assert.Contains(t, text, "▾ ▣ Docs")
	assert.Contains(t, text, "Guide")
	assert.Contains(t, text, "API Reference")
	assert.Contains(t, text, "Show more")
	assert.NotContains(t, text, "Audit")
	assert.NotContains(t, text, "Main", "the first group never gets a header")

	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "Guide") {
			assert.Contains(t, line, barGlyph)
		}
		if strings.Contains(line, "Home") {
			assert.NotContains(t, line, barGlyph)
		}
	}
}

func TestSidebar_RenderSlim(t *testing.T) {
	sb := newTestSidebar()
	_, r := render(true, "guide")

	out := sb.Render(&r)
	text := plain(out)
	assert.Equal(t, 5, lipgloss.Width(out))
	assert.NotContains(t, text, "Home")
	assert.NotContains(t, text, "Guide")
	assert.Contains(t, text, "⌂")
	assert.Contains(t, text, "☰")

	var docsLine string
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "▣") {
			docsLine = line
		}
	}
	require.NotEmpty(t, docsLine)
	// selected through its child, and marked as owning a submenu
	assert.Contains(t, docsLine, barGlyph)
	assert.Contains(t, docsLine, railChevron)
}

func TestSidebar_ShowMoreRevealsHidden(t *testing.T) {
	sb := newTestSidebar()
	tg, _ := render(false, "")
	tg.OnShowMoreToggle(nav.NewClickEvent())
	r := tg.Render(testGroups(), "")

	text := plain(sb.Render(&r))
	assert.Contains(t, text, "Audit")
	assert.Contains(t, text, "Show less")
}

func TestSidebar_Height(t *testing.T) {
	sb := newTestSidebar()
	sb.SetHeight(20)
	_, r := render(true, "")
	assert.Equal(t, 20, lipgloss.Height(sb.Render(&r)))
}

func TestSidebar_FocusKeepsText(t *testing.T) {
	sb := newTestSidebar()
	sb.SetFocused(true)
	sb.Focus(EntryZoneID("home"))
	assert.Equal(t, EntryZoneID("home"), sb.FocusID())

	_, r := render(false, "home")
	text := plain(sb.Render(&r))
	assert.Contains(t, text, "Home")
	assert.Contains(t, text, barGlyph)
}

func TestSidebar_Width(t *testing.T) {
	sb := NewSidebar(ClassNames(RosePineMoon, nil), Icons(IconSetNone), 1, 2)
	assert.Equal(t, 3, sb.Width(true))
	assert.Equal(t, 8, sb.Width(false))
}

func TestHeaderLine(t *testing.T) {
	assert.Equal(t, "─────", headerLine("Admin", 5, false))
	assert.Equal(t, "───", headerLine("Admin", 3, true))
	line := headerLine("Administration", 12, false)
	assert.Equal(t, 12, lipgloss.Width(line))
	assert.True(t, strings.HasPrefix(line, "── "))
}

func TestCenterAndPad(t *testing.T) {
	assert.Equal(t, " x ", center("x", 3))
	assert.Equal(t, "x", center("xyz", 1))
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcd", padRight("abcd", 2))
}
