// Package nav holds the navigation presentation state machine: which mode the
// sidebar renders in, which links are visible and selected, and which single
// floating submenu is open.
package nav

// GroupType tags a group. The zero value is an ordinary group.
type GroupType string

const (
	GroupTypeOrdinary GroupType = ""
	// GroupTypeToggle marks the group whose first link becomes the
	// collapse/expand control.
	GroupTypeToggle GroupType = "ToggleGroup"
)

// Link is a node of the navigation tree. The tree is read-only to this
// package; it is supplied fresh on every render.
type Link struct {
	Key           string
	URL           string
	Title         string
	Name          string
	AlternateText string
	Icon          string
	Target        string
	Children      []Link

	IsHidden       bool
	IsShowMoreLink bool
	// IsExpanded is the initial inline expansion in wide mode.
	IsExpanded bool

	// OnActivate runs when the link is the activation target and has no
	// children.
	OnActivate func(link *Link)
}

// HasChildren reports whether the link owns a submenu.
func (l *Link) HasChildren() bool {
	return l != nil && len(l.Children) > 0
}

// Group is an ordered list of links with a type tag.
type Group struct {
	GroupType GroupType
	Name      string
	Links     []Link
}

// IsToggle reports whether the group supplies the collapse control.
func (g Group) IsToggle() bool {
	return g.GroupType == GroupTypeToggle
}

// FindLink returns the first link with the given key, searching depth first.
func FindLink(groups []Group, key string) *Link {
	if key == "" {
		return nil
	}
	for gi := range groups {
		if l := findIn(groups[gi].Links, key); l != nil {
			return l
		}
	}
	return nil
}

func findIn(links []Link, key string) *Link {
	for i := range links {
		if links[i].Key == key {
			return &links[i]
		}
		if l := findIn(links[i].Children, key); l != nil {
			return l
		}
	}
	return nil
}
