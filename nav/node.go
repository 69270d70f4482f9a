package nav

// NodeKind identifies a rendered node.
type NodeKind int

const (
	NodeToggle   NodeKind = iota // collapse/expand control
	NodeHeader                   // group separator header
	NodeEntry                    // top-level link: rail entry in slim, row in wide
	NodeLink                     // nested link: floating submenu item or inline child
	NodeFloating                 // floating submenu container
)

func (k NodeKind) String() string {
	switch k {
	case NodeToggle:
		return "toggle"
	case NodeHeader:
		return "header"
	case NodeEntry:
		return "entry"
	case NodeLink:
		return "link"
	case NodeFloating:
		return "floating"
	default:
		return "unknown"
	}
}

const (
	// RoleMenu is the role of every activation node.
	RoleMenu = "menu"
	// FloatingMarker tags floating submenu containers.
	FloatingMarker = "data-floating-nav"
)

// Node is one element of a rendered navigation tree. It carries the
// accessibility contract (role, label, expanded state) and the semantic
// state the styling layer maps to slots; it carries no styling itself.
type Node struct {
	Kind   NodeKind
	Key    string
	Text   string // visible text; empty for icon-only rail entries
	Label  string // accessible label
	Icon   string
	URL    string
	Target string
	Role   string

	// Expanded is nil when the node has nothing to expand.
	Expanded *bool
	Selected bool
	// Open is the visible-open marking of a floating container.
	Open      bool
	ScrollTop bool
	Marker    string
	Level     int

	HasChildren bool
	ShowMore    bool

	Children []Node
}

// IsExpanded reports the expanded state, false when not applicable.
func (n *Node) IsExpanded() bool {
	return n.Expanded != nil && *n.Expanded
}

// Floating returns the node's floating submenu container, if it has one.
func (n *Node) Floating() *Node {
	for i := range n.Children {
		if n.Children[i].Kind == NodeFloating {
			return &n.Children[i]
		}
	}
	return nil
}

// GroupNode is one rendered group: an optional header and its entries.
type GroupNode struct {
	Name    string
	Header  *Node
	Entries []Node
}

// Rendered is the output of one render pass.
type Rendered struct {
	Collapsed   bool
	ShowMore    bool
	SelectedKey string
	Toggle      *Node
	Groups      []GroupNode
}

// Walk visits every node depth first. Returning false from fn stops the walk.
func (r *Rendered) Walk(fn func(n *Node) bool) {
	if r.Toggle != nil && !fn(r.Toggle) {
		return
	}
	for gi := range r.Groups {
		g := &r.Groups[gi]
		if g.Header != nil && !fn(g.Header) {
			return
		}
		for i := range g.Entries {
			if !walkNode(&g.Entries[i], fn) {
				return
			}
		}
	}
}

func walkNode(n *Node, fn func(n *Node) bool) bool {
	if !fn(n) {
		return false
	}
	for i := range n.Children {
		if !walkNode(&n.Children[i], fn) {
			return false
		}
	}
	return true
}

// OpenFloating returns every floating container carrying the visible-open
// marking.
func (r *Rendered) OpenFloating() []*Node {
	var out []*Node
	r.Walk(func(n *Node) bool {
		if n.Kind == NodeFloating && n.Open {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Entry returns the top-level entry with key, or nil.
func (r *Rendered) Entry(key string) *Node {
	for gi := range r.Groups {
		for i := range r.Groups[gi].Entries {
			if r.Groups[gi].Entries[i].Key == key {
				return &r.Groups[gi].Entries[i]
			}
		}
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }
