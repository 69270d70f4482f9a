package nav

// WideRenderer lays every level out inline with text. Parents expand and
// collapse in place; the expansion is private to the renderer.
type WideRenderer struct {
	base
	expanded map[string]bool
	selected string
}

// NewWideRenderer returns an empty wide strategy.
func NewWideRenderer() *WideRenderer {
	return &WideRenderer{expanded: make(map[string]bool)}
}

func (w *WideRenderer) Render(p Props) []GroupNode {
	w.selected = p.SelectedKey
	out := make([]GroupNode, 0, len(p.Groups))
	for gi, g := range p.Groups {
		gn := GroupNode{Name: g.Name}
		if GroupHeaderVisible(gi, g, p.ShowMore) {
			gn.Header = &Node{Kind: NodeHeader, Text: g.Name, Label: g.Name}
		}
		for _, link := range VisibleLinks(g.Links, p.ShowMore) {
			gn.Entries = append(gn.Entries, w.node(&link, 0, p))
		}
		if gn.Header == nil && len(gn.Entries) == 0 {
			continue
		}
		out = append(out, gn)
	}
	return out
}

func (w *WideRenderer) node(link *Link, level int, p Props) Node {
	kind := NodeLink
	if level == 0 {
		kind = NodeEntry
	}
	text := w.LinkText(link, p.ShowMore)
	n := Node{
		Kind:        kind,
		Key:         link.Key,
		Text:        text,
		Label:       text,
		Icon:        link.Icon,
		URL:         link.URL,
		Target:      link.Target,
		Role:        RoleMenu,
		Level:       level,
		HasChildren: link.HasChildren(),
		ShowMore:    link.IsShowMoreLink,
	}
	if !link.HasChildren() {
		n.Selected = w.IsLinkSelected(link, false, p.SelectedKey)
		return n
	}
	expanded := w.isExpanded(link, p.SelectedKey)
	n.Expanded = boolPtr(expanded)
	// A collapsed parent stands in for its hidden subtree.
	n.Selected = w.IsLinkSelected(link, !expanded, p.SelectedKey)
	if expanded {
		for _, child := range VisibleLinks(link.Children, p.ShowMore) {
			n.Children = append(n.Children, w.node(&child, level+1, p))
		}
	}
	return n
}

func (w *WideRenderer) isExpanded(link *Link, selectedKey string) bool {
	if v, ok := w.expanded[link.Key]; ok {
		return v
	}
	if link.IsExpanded {
		return true
	}
	return link.Key != selectedKey && IsSelected(link, true, selectedKey)
}

// Activate expands or collapses a parent in place, otherwise selects.
func (w *WideRenderer) Activate(link *Link, ev *Event, cb Callbacks) {
	if link == nil {
		return
	}
	if link.HasChildren() {
		ev.PreventDefault()
		ev.StopPropagation()
		w.expanded[link.Key] = !w.isExpanded(link, w.selected)
		return
	}
	activateLeaf(link, ev, cb)
}

// KeyDown is inert in wide mode: there is no floating submenu to toggle.
func (w *WideRenderer) KeyDown(*Link, *Event, Callbacks) {}

func (w *WideRenderer) Hover(*Link) {}
func (w *WideRenderer) Leave(*Link) {}

var _ Renderer = (*WideRenderer)(nil)
