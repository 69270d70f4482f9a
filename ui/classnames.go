package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/navrail/log"
)

// Slot names one styled part of the sidebar. The nav core only knows the
// semantic state; the mapping from state to slot lives in the sidebar.
type Slot string

const (
	SlotRoot          Slot = "root"
	SlotToggle        Slot = "toggle"
	SlotHeader        Slot = "header"
	SlotItem          Slot = "item"
	SlotSelectedItem  Slot = "selectedItem"
	SlotIconColumn    Slot = "iconColumn"
	SlotBarMarker     Slot = "barMarker"
	SlotFocusRing     Slot = "focusRing"
	SlotFloatingPanel Slot = "floatingPanel"
	SlotFloatingTitle Slot = "floatingTitle"
)

// Slots lists every slot in a stable order.
func Slots() []Slot {
	return []Slot{
		SlotRoot, SlotToggle, SlotHeader, SlotItem, SlotSelectedItem,
		SlotIconColumn, SlotBarMarker, SlotFocusRing, SlotFloatingPanel, SlotFloatingTitle,
	}
}

// ClassMap maps slots to styles.
type ClassMap map[Slot]lipgloss.Style

// Style returns the style for slot, or an empty style.
func (c ClassMap) Style(slot Slot) lipgloss.Style {
	if s, ok := c[slot]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// ClassNames builds the slot styles for theme. overrides maps a slot name to
// a colour; border slots take it as the border colour, the rest as the
// foreground. Unknown slot names are logged and ignored.
func ClassNames(t Theme, overrides map[string]string) ClassMap {
	c := ClassMap{
		SlotRoot: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Overlay),
		SlotToggle: lipgloss.NewStyle().
			Foreground(t.Iris).
			Bold(true),
		SlotHeader: lipgloss.NewStyle().
			Foreground(t.Muted),
		SlotItem: lipgloss.NewStyle().
			Foreground(t.Text),
		SlotSelectedItem: lipgloss.NewStyle().
			Background(t.Foam).
			Foreground(t.Base).
			Bold(true),
		SlotIconColumn: lipgloss.NewStyle().
			Foreground(t.Subtle),
		SlotBarMarker: lipgloss.NewStyle().
			Foreground(t.Foam),
		SlotFocusRing: lipgloss.NewStyle().
			Background(t.Overlay).
			Foreground(t.Iris),
		SlotFloatingPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Iris).
			Background(t.Surface).
			Padding(0, 1),
		SlotFloatingTitle: lipgloss.NewStyle().
			Foreground(t.Rose).
			Bold(true),
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		slot := Slot(name)
		style, ok := c[slot]
		if !ok {
			log.WarningLog.Printf("theme: unknown slot %q ignored", name)
			continue
		}
		color := lipgloss.Color(overrides[name])
		switch slot {
		case SlotRoot, SlotFloatingPanel:
			style = style.BorderForeground(color)
		case SlotSelectedItem, SlotFocusRing:
			style = style.Background(color)
		default:
			style = style.Foreground(color)
		}
		c[slot] = style
	}
	return c
}
