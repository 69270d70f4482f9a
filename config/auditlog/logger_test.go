package auditlog_test

import (
	"testing"

	"github.com/kastheco/navrail/config/auditlog"
	"github.com/stretchr/testify/assert"
)

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "nav_collapsed", auditlog.EventCollapsed.String())
	assert.Equal(t, "link_selected", auditlog.EventLinkSelected.String())
}

func TestNopLogger_DoesNotPanic(t *testing.T) {
	l := auditlog.NopLogger()
	assert.NotPanics(t, func() {
		l.Emit(auditlog.Event{Kind: auditlog.EventCollapsed})
	})
	events, err := l.Query(auditlog.QueryFilter{})
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestNewEvent_AppliesOptions(t *testing.T) {
	e := auditlog.NewEvent(auditlog.EventFloatingOpened, "opened",
		auditlog.WithLink("docs"),
		auditlog.WithMode("slim"),
		auditlog.WithTree("nav.toml"),
		auditlog.WithDetail("enter"),
		auditlog.WithLevel("warn"),
	)
	assert.Equal(t, auditlog.EventFloatingOpened, e.Kind)
	assert.Equal(t, "opened", e.Message)
	assert.Equal(t, "docs", e.LinkKey)
	assert.Equal(t, "slim", e.Mode)
	assert.Equal(t, "nav.toml", e.TreeFile)
	assert.Equal(t, "enter", e.Detail)
	assert.Equal(t, "warn", e.Level)
}
