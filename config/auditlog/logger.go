package auditlog

import "time"

// QueryFilter specifies criteria for querying audit events.
type QueryFilter struct {
	TreeFile string
	LinkKey  string
	Kinds    []EventKind
	Limit    int
	Before   time.Time
	After    time.Time
}

// Logger is the interface for emitting and querying audit events.
type Logger interface {
	Emit(event Event)
	Query(filter QueryFilter) ([]Event, error)
	Close() error
}

// EventOption is a functional option for configuring optional Event fields.
type EventOption func(*Event)

// NewEvent builds an event of kind with message and options applied.
func NewEvent(kind EventKind, message string, opts ...EventOption) Event {
	e := Event{Kind: kind, Message: message}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// WithTree sets the TreeFile field on the event.
func WithTree(path string) EventOption {
	return func(e *Event) { e.TreeFile = path }
}

// WithLink sets the LinkKey field on the event.
func WithLink(key string) EventOption {
	return func(e *Event) { e.LinkKey = key }
}

// WithMode sets the Mode field on the event.
func WithMode(mode string) EventOption {
	return func(e *Event) { e.Mode = mode }
}

// WithDetail sets the Detail field on the event.
func WithDetail(detail string) EventOption {
	return func(e *Event) { e.Detail = detail }
}

// WithLevel sets the Level field on the event (info, warn, error).
func WithLevel(level string) EventOption {
	return func(e *Event) { e.Level = level }
}

// nopLogger is a no-op Logger used when no database could be opened.
type nopLogger struct{}

// NopLogger returns a Logger that discards all events.
func NopLogger() Logger {
	return &nopLogger{}
}

func (n *nopLogger) Emit(_ Event) {}

func (n *nopLogger) Query(_ QueryFilter) ([]Event, error) {
	return nil, nil
}

func (n *nopLogger) Close() error {
	return nil
}
