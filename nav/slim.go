package nav

// SlimRenderer draws each group as a rail of icon-only entries. Every entry
// owns one floating submenu holding the entry's title and its immediate
// children, if any; deeper levels are not shown.
type SlimRenderer struct {
	base
	scrollTop map[string]bool
}

// NewSlimRenderer returns an empty slim strategy.
func NewSlimRenderer() *SlimRenderer {
	return &SlimRenderer{scrollTop: make(map[string]bool)}
}

func (s *SlimRenderer) Render(p Props) []GroupNode {
	out := make([]GroupNode, 0, len(p.Groups))
	for gi, g := range p.Groups {
		gn := GroupNode{Name: g.Name}
		if GroupHeaderVisible(gi, g, p.ShowMore) {
			gn.Header = &Node{Kind: NodeHeader, Text: g.Name, Label: g.Name}
		}
		f := NewVisibilityFilter(p.ShowMore)
		for i := range g.Links {
			link := &g.Links[i]
			if !f.Show(link) {
				continue
			}
			gn.Entries = append(gn.Entries, s.entry(link, p))
		}
		if gn.Header == nil && len(gn.Entries) == 0 {
			continue
		}
		out = append(out, gn)
	}
	return out
}

func (s *SlimRenderer) entry(link *Link, p Props) Node {
	n := Node{
		Kind:        NodeEntry,
		Key:         link.Key,
		Label:       s.LinkText(link, p.ShowMore),
		Icon:        link.Icon,
		URL:         link.URL,
		Target:      link.Target,
		Role:        RoleMenu,
		Selected:    s.IsLinkSelected(link, true, p.SelectedKey),
		HasChildren: link.HasChildren(),
		ShowMore:    link.IsShowMoreLink,
	}
	open := p.OpenAnchor == link.Key
	if link.HasChildren() {
		n.Expanded = boolPtr(open)
	}
	n.Children = []Node{s.floating(link, p, open)}
	return n
}

func (s *SlimRenderer) floating(link *Link, p Props, open bool) Node {
	// the submenu lists every child; hidden links only drop out of the rail
	items := make([]Node, 0, len(link.Children)+1)
	items = append(items, s.floatingLink(link, 0, p))
	for i := range link.Children {
		items = append(items, s.floatingLink(&link.Children[i], 1, p))
	}
	return Node{
		Kind:      NodeFloating,
		Key:       link.Key,
		Label:     s.LinkText(link, p.ShowMore),
		Marker:    FloatingMarker,
		Open:      open,
		ScrollTop: s.scrollTop[link.Key],
		Children:  items,
	}
}

func (s *SlimRenderer) floatingLink(link *Link, level int, p Props) Node {
	text := s.LinkText(link, p.ShowMore)
	return Node{
		Kind:   NodeLink,
		Key:    link.Key,
		Text:   text,
		Label:  text,
		Icon:   link.Icon,
		URL:    link.URL,
		Target: link.Target,
		Role:   RoleMenu,
		Level:  level,
		// The rail icon already highlights the level 0 title.
		Selected:    level > 0 && s.IsLinkSelected(link, false, p.SelectedKey),
		HasChildren: link.HasChildren(),
		ShowMore:    link.IsShowMoreLink,
	}
}

// Activate: an entry with children navigates nowhere, its floating submenu is
// the destination.
func (s *SlimRenderer) Activate(link *Link, ev *Event, cb Callbacks) {
	if link == nil {
		return
	}
	if link.HasChildren() {
		ev.PreventDefault()
		ev.StopPropagation()
		return
	}
	activateLeaf(link, ev, cb)
}

// KeyDown toggles the entry's floating submenu on Enter. Other key codes are
// ignored.
func (s *SlimRenderer) KeyDown(link *Link, ev *Event, cb Callbacks) {
	if link == nil || ev == nil || ev.KeyCode != KeyCodeEnter {
		return
	}
	s.scrollTop[link.Key] = true
	cb.floatingToggle(link.Key)
}

func (s *SlimRenderer) Hover(link *Link) { s.clearScrollTop(link) }
func (s *SlimRenderer) Leave(link *Link) { s.clearScrollTop(link) }

func (s *SlimRenderer) clearScrollTop(link *Link) {
	if link != nil {
		delete(s.scrollTop, link.Key)
	}
}

// ScrollTop reports the transient scroll flag for key.
func (s *SlimRenderer) ScrollTop(key string) bool {
	return s.scrollTop[key]
}

var _ Renderer = (*SlimRenderer)(nil)
