package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyLeft  // close the floating submenu / collapse an inline parent
	KeyRight // open the floating submenu / expand an inline parent
	KeyEnter
	KeyClick // activate without the Enter key code (space)

	KeyCollapse // toggle wide/slim
	KeyShowMore // toggle show-more
	KeyEsc      // close the open floating submenu
	KeyYank     // copy the focused link's URL
	KeyReload   // reload the tree file
	KeyHelp
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	"left":   KeyLeft,
	"h":      KeyLeft,
	"right":  KeyRight,
	"l":      KeyRight,
	"enter":  KeyEnter,
	" ":      KeyClick,
	"[":      KeyCollapse,
	"ctrl+b": KeyCollapse,
	"m":      KeyShowMore,
	"esc":    KeyEsc,
	"y":      KeyYank,
	"r":      KeyReload,
	"?":      KeyHelp,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "back"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "into"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "select"),
	),
	KeyClick: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "activate"),
	),
	KeyCollapse: key.NewBinding(
		key.WithKeys("[", "ctrl+b"),
		key.WithHelp("[", "collapse"),
	),
	KeyShowMore: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "more"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	KeyYank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy url"),
	),
	KeyReload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Lookup resolves a key string from tea.KeyMsg.String().
func Lookup(s string) (KeyName, bool) {
	name, ok := GlobalKeyStringsMap[s]
	return name, ok
}

// HelpMap adapts the bindings to bubbles/help.KeyMap.
type HelpMap struct {
	// Collapsed switches the collapse label to "expand".
	Collapsed bool
}

func (h HelpMap) collapse() key.Binding {
	b := GlobalkeyBindings[KeyCollapse]
	if h.Collapsed {
		b.SetHelp("[", "expand")
	}
	return b
}

func (h HelpMap) ShortHelp() []key.Binding {
	return []key.Binding{
		GlobalkeyBindings[KeyEnter],
		h.collapse(),
		GlobalkeyBindings[KeyShowMore],
		GlobalkeyBindings[KeyYank],
		GlobalkeyBindings[KeyHelp],
		GlobalkeyBindings[KeyQuit],
	}
}

func (h HelpMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{GlobalkeyBindings[KeyUp], GlobalkeyBindings[KeyDown], GlobalkeyBindings[KeyLeft], GlobalkeyBindings[KeyRight]},
		{GlobalkeyBindings[KeyEnter], GlobalkeyBindings[KeyClick], GlobalkeyBindings[KeyEsc]},
		{h.collapse(), GlobalkeyBindings[KeyShowMore], GlobalkeyBindings[KeyYank], GlobalkeyBindings[KeyReload]},
		{GlobalkeyBindings[KeyHelp], GlobalkeyBindings[KeyQuit]},
	}
}
