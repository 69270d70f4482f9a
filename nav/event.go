package nav

// KeyCodeEnter is the only key code that toggles a floating submenu.
const KeyCodeEnter = 13

// Event is an activation or keyboard input delivered to the widget. Handlers
// record suppression on it; the host decides what default navigation and
// propagation mean.
type Event struct {
	// KeyCode is zero for pointer activations.
	KeyCode int

	defaultPrevented   bool
	propagationStopped bool
}

// NewKeyEvent returns a keyboard event for code.
func NewKeyEvent(code int) *Event {
	return &Event{KeyCode: code}
}

// NewClickEvent returns a pointer activation event.
func NewClickEvent() *Event {
	return &Event{}
}

func (e *Event) PreventDefault() {
	if e != nil {
		e.defaultPrevented = true
	}
}

func (e *Event) StopPropagation() {
	if e != nil {
		e.propagationStopped = true
	}
}

func (e *Event) DefaultPrevented() bool   { return e != nil && e.defaultPrevented }
func (e *Event) PropagationStopped() bool { return e != nil && e.propagationStopped }
