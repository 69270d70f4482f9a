package auditlog

import "time"

// EventKind identifies the type of audit event.
type EventKind string

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	return string(k)
}

// Mode events.
const (
	EventCollapsed       EventKind = "nav_collapsed"
	EventExpanded        EventKind = "nav_expanded"
	EventShowMoreToggled EventKind = "show_more_toggled"
)

// Link events.
const (
	EventLinkSelected   EventKind = "link_selected"
	EventFloatingOpened EventKind = "floating_opened"
	EventFloatingClosed EventKind = "floating_closed"
	EventURLCopied      EventKind = "url_copied"
)

// Tree events.
const (
	EventTreeReloaded EventKind = "tree_reloaded"
	EventTreeError    EventKind = "tree_error"
	EventError        EventKind = "error"
)

// Event is a single audit log entry.
type Event struct {
	ID        int64
	Kind      EventKind
	Timestamp time.Time
	TreeFile  string
	LinkKey   string
	Mode      string // wide or slim at the time of the event
	Message   string
	Detail    string
	Level     string // info, warn, error
}
