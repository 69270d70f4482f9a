package nav

// Props is the read-only input a renderer builds its tree from.
type Props struct {
	Groups      []Group
	SelectedKey string
	ShowMore    bool
	// OpenAnchor is the key of the visibly open floating submenu, or empty.
	OpenAnchor string
}

// Callbacks are the only way a renderer asks for a state change. The toggler
// that owns the state supplies them.
type Callbacks struct {
	OnShowMoreToggle func(ev *Event)
	OnSelect         func(key string)
	OnFloatingToggle func(anchor string)
}

func (cb Callbacks) showMoreToggle(ev *Event) {
	if cb.OnShowMoreToggle != nil {
		cb.OnShowMoreToggle(ev)
	}
}

func (cb Callbacks) selectKey(key string) {
	if cb.OnSelect != nil {
		cb.OnSelect(key)
	}
}

func (cb Callbacks) floatingToggle(anchor string) {
	if cb.OnFloatingToggle != nil {
		cb.OnFloatingToggle(anchor)
	}
}

// Renderer is one presentation strategy. Slim and Wide are interchangeable
// behind it; each keeps only its own private presentation state.
type Renderer interface {
	IsLinkSelected(link *Link, includeDescendants bool, selectedKey string) bool
	LinkText(link *Link, showMore bool) string
	Render(props Props) []GroupNode

	// Activate handles a click (or Enter used as click) on link.
	Activate(link *Link, ev *Event, cb Callbacks)
	// KeyDown handles a raw key event on link.
	KeyDown(link *Link, ev *Event, cb Callbacks)
	Hover(link *Link)
	Leave(link *Link)
}

// base carries the behaviour both strategies share.
type base struct{}

func (base) IsLinkSelected(link *Link, includeDescendants bool, selectedKey string) bool {
	return IsSelected(link, includeDescendants, selectedKey)
}

// LinkText is the link's name, except for an affordance while show-more is on,
// which reads its alternate text ("show less") when one is set.
func (base) LinkText(link *Link, showMore bool) string {
	if link == nil {
		return ""
	}
	if link.IsShowMoreLink && showMore && link.AlternateText != "" {
		return link.AlternateText
	}
	return link.Name
}

// activateLeaf is the activation path shared by both strategies once
// children have been handled.
func activateLeaf(link *Link, ev *Event, cb Callbacks) {
	ev.StopPropagation()
	if link.IsShowMoreLink {
		cb.showMoreToggle(ev)
		return
	}
	cb.selectKey(link.Key)
	if link.OnActivate != nil {
		link.OnActivate(link)
	}
}
