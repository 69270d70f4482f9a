package nav

// Mode is the active rendering strategy.
type Mode int

const (
	ModeWide Mode = iota
	ModeSlim
)

func (m Mode) String() string {
	if m == ModeSlim {
		return "slim"
	}
	return "wide"
}

// State is a snapshot of the navigation state owned by a Toggler.
type State struct {
	Collapsed   bool
	ShowMore    bool
	SelectedKey string
	// OpenAnchor is the visibly open floating submenu, empty when none.
	OpenAnchor string
}

// Toggler is the root controller. It owns the navigation state for one
// mounted widget, persists the two boolean preferences, keeps the toggle
// group apart from the rest and delegates the rest to the active strategy.
// Nothing else mutates its state; strategies go through callbacks.
type Toggler struct {
	prefs Preferences

	collapsed   bool
	showMore    bool
	selectedKey string
	callerKey   string
	floating    FloatingController

	slim *SlimRenderer
	wide *WideRenderer

	// last render input, used to resolve keys from input events
	toggleGroups []Group
	otherGroups  []Group
}

// Option configures a Toggler at creation.
type Option func(*Toggler)

// WithSelectedKey sets the initially selected link.
func WithSelectedKey(key string) Option {
	return func(t *Toggler) {
		t.selectedKey = key
		t.callerKey = key
	}
}

// NewToggler creates the controller. The collapse preference, when stored,
// wins over the viewport rule; show-more defaults to off.
func NewToggler(prefs Preferences, vp Viewport, opts ...Option) *Toggler {
	t := &Toggler{
		prefs: prefs,
		slim:  NewSlimRenderer(),
		wide:  NewWideRenderer(),
	}
	if collapsed, ok := readBool(prefs, PrefCollapsed); ok {
		t.collapsed = collapsed
	} else if vp != nil {
		t.collapsed = vp.Width() < NarrowViewportWidth
	}
	t.showMore, _ = readBool(prefs, PrefShowMore)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns a snapshot of the current navigation state.
func (t *Toggler) State() State {
	anchor, _ := t.floating.OpenAnchor()
	return State{
		Collapsed:   t.collapsed,
		ShowMore:    t.showMore,
		SelectedKey: t.selectedKey,
		OpenAnchor:  anchor,
	}
}

func (t *Toggler) Collapsed() bool { return t.collapsed }

func (t *Toggler) ShowMore() bool { return t.showMore }

func (t *Toggler) SelectedKey() string { return t.selectedKey }

// Mode returns the strategy chosen by the collapse state.
func (t *Toggler) Mode() Mode {
	if t.collapsed {
		return ModeSlim
	}
	return ModeWide
}

// Renderer returns the active strategy.
func (t *Toggler) Renderer() Renderer {
	if t.collapsed {
		return t.slim
	}
	return t.wide
}

// PartitionGroups splits groups into toggle groups and the others in one
// pass, keeping order within each side.
func PartitionGroups(groups []Group) (toggle, other []Group) {
	for _, g := range groups {
		if g.IsToggle() {
			toggle = append(toggle, g)
		} else {
			other = append(other, g)
		}
	}
	return toggle, other
}

// ToggleControl renders the collapse/expand control from the first link of
// the first toggle group, or nil when there is none. Only that link counts.
func (t *Toggler) ToggleControl(toggle []Group) *Node {
	link := toggleLink(toggle)
	if link == nil {
		return nil
	}
	label := link.AlternateText
	if t.collapsed {
		label = link.Name
	}
	return &Node{
		Kind:     NodeToggle,
		Key:      link.Key,
		Text:     label,
		Label:    label,
		Icon:     link.Icon,
		URL:      link.URL,
		Role:     RoleMenu,
		Expanded: boolPtr(!t.collapsed),
	}
}

func toggleLink(toggle []Group) *Link {
	if len(toggle) == 0 || len(toggle[0].Links) == 0 {
		return nil
	}
	return &toggle[0].Links[0]
}

// Render builds the tree for groups. A non-empty selectedKey different from
// the last one the caller passed replaces the current selection; otherwise
// selections made inside the widget stand.
func (t *Toggler) Render(groups []Group, selectedKey string) Rendered {
	if selectedKey != "" && selectedKey != t.callerKey {
		t.callerKey = selectedKey
		t.selectedKey = selectedKey
	}
	t.toggleGroups, t.otherGroups = PartitionGroups(groups)

	r := Rendered{
		Collapsed:   t.collapsed,
		ShowMore:    t.showMore,
		SelectedKey: t.selectedKey,
		Toggle:      t.ToggleControl(t.toggleGroups),
	}
	r.Groups = t.Renderer().Render(t.props())
	return r
}

func (t *Toggler) props() Props {
	p := Props{
		Groups:      t.otherGroups,
		SelectedKey: t.selectedKey,
		ShowMore:    t.showMore,
	}
	if t.collapsed {
		p.OpenAnchor, _ = t.floating.OpenAnchor()
	}
	return p
}

func (t *Toggler) callbacks() Callbacks {
	return Callbacks{
		OnShowMoreToggle: t.OnShowMoreToggle,
		OnSelect:         t.Select,
		OnFloatingToggle: t.floating.Activate,
	}
}

// OnCollapseToggle flips between wide and slim and persists the new value.
func (t *Toggler) OnCollapseToggle(ev *Event) {
	ev.PreventDefault()
	ev.StopPropagation()
	t.collapsed = !t.collapsed
	writeBool(t.prefs, PrefCollapsed, t.collapsed)
	t.floating.Close()
}

// OnShowMoreToggle flips the show-more preference and persists it.
func (t *Toggler) OnShowMoreToggle(ev *Event) {
	ev.PreventDefault()
	ev.StopPropagation()
	t.showMore = !t.showMore
	writeBool(t.prefs, PrefShowMore, t.showMore)
}

// Select makes key the selected link.
func (t *Toggler) Select(key string) {
	t.selectedKey = key
}

// IsToggleKey reports whether key is the rendered collapse control.
func (t *Toggler) IsToggleKey(key string) bool {
	link := toggleLink(t.toggleGroups)
	return link != nil && key != "" && link.Key == key
}

// Link resolves key against the last rendered groups, toggle group excluded.
func (t *Toggler) Link(key string) *Link {
	return FindLink(t.otherGroups, key)
}

// Activate routes a click on key: the collapse control toggles the mode,
// any other link goes to the active strategy.
func (t *Toggler) Activate(key string, ev *Event) {
	if t.IsToggleKey(key) {
		t.OnCollapseToggle(ev)
		return
	}
	if link := t.Link(key); link != nil {
		t.Renderer().Activate(link, ev, t.callbacks())
	}
}

// KeyDown routes a key event on key to the active strategy.
func (t *Toggler) KeyDown(key string, ev *Event) {
	if link := t.Link(key); link != nil {
		t.Renderer().KeyDown(link, ev, t.callbacks())
	}
}

func (t *Toggler) Hover(key string) {
	if link := t.Link(key); link != nil {
		t.Renderer().Hover(link)
	}
}

func (t *Toggler) Leave(key string) {
	if link := t.Link(key); link != nil {
		t.Renderer().Leave(link)
	}
}

// CloseFloating clears any open floating submenu.
func (t *Toggler) CloseFloating() {
	t.floating.Close()
}
