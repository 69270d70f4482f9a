package auditlog_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/kastheco/navrail/config"
	"github.com/kastheco/navrail/config/auditlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteLogger_EmitAndQuery(t *testing.T) {
	logger, err := auditlog.NewSQLiteLogger(":memory:")
	require.NoError(t, err)
	defer logger.Close()

	logger.Emit(auditlog.Event{
		Kind:     auditlog.EventLinkSelected,
		TreeFile: "nav.toml",
		LinkKey:  "home",
		Mode:     "wide",
		Message:  "selected Home",
	})

	events, err := logger.Query(auditlog.QueryFilter{TreeFile: "nav.toml", Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, auditlog.EventLinkSelected, events[0].Kind)
	assert.Equal(t, "home", events[0].LinkKey)
	assert.Equal(t, "info", events[0].Level)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestSQLiteLogger_QueryFilterByLink(t *testing.T) {
	logger, err := auditlog.NewSQLiteLogger(":memory:")
	require.NoError(t, err)
	defer logger.Close()

	logger.Emit(auditlog.Event{Kind: auditlog.EventLinkSelected, LinkKey: "a"})
	logger.Emit(auditlog.Event{Kind: auditlog.EventLinkSelected, LinkKey: "b"})

	events, err := logger.Query(auditlog.QueryFilter{LinkKey: "a", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestSQLiteLogger_QueryFilterByKind(t *testing.T) {
	logger, err := auditlog.NewSQLiteLogger(":memory:")
	require.NoError(t, err)
	defer logger.Close()

	logger.Emit(auditlog.Event{Kind: auditlog.EventCollapsed})
	logger.Emit(auditlog.Event{Kind: auditlog.EventShowMoreToggled})

	events, err := logger.Query(auditlog.QueryFilter{
		Kinds: []auditlog.EventKind{auditlog.EventShowMoreToggled},
		Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, auditlog.EventShowMoreToggled, events[0].Kind)
}

func TestSQLiteLogger_QueryOrderDesc(t *testing.T) {
	logger, err := auditlog.NewSQLiteLogger(":memory:")
	require.NoError(t, err)
	defer logger.Close()

	logger.Emit(auditlog.Event{Kind: auditlog.EventCollapsed, Message: "first"})
	time.Sleep(time.Millisecond)
	logger.Emit(auditlog.Event{Kind: auditlog.EventExpanded, Message: "second"})

	events, err := logger.Query(auditlog.QueryFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "second", events[0].Message) // newest first
}

func TestSQLiteLogger_SharedDB(t *testing.T) {
	// The logger shares the preference database file (separate table).
	dbPath := filepath.Join(t.TempDir(), "preferences.db")

	store, err := config.NewSQLitePreferenceStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	logger, err := auditlog.NewSQLiteLogger(dbPath)
	require.NoError(t, err)
	defer logger.Close()

	store.Set("NavToggler.showMore", "true")
	logger.Emit(auditlog.Event{Kind: auditlog.EventShowMoreToggled, Message: "test"})
	events, err := logger.Query(auditlog.QueryFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, events, 1)
	v, ok := store.Get("NavToggler.showMore")
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestSQLiteLogger_Prune(t *testing.T) {
	logger, err := auditlog.NewSQLiteLogger(":memory:")
	require.NoError(t, err)
	defer logger.Close()

	now := time.Now()
	logger.Emit(auditlog.Event{Kind: auditlog.EventCollapsed, Message: "old", Timestamp: now.Add(-48 * time.Hour)})
	logger.Emit(auditlog.Event{Kind: auditlog.EventExpanded, Message: "new", Timestamp: now})

	n, err := logger.Prune(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	events, err := logger.Query(auditlog.QueryFilter{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "new", events[0].Message)
}

func TestSQLiteLogger_QueryTimeWindow(t *testing.T) {
	logger, err := auditlog.NewSQLiteLogger(":memory:")
	require.NoError(t, err)
	defer logger.Close()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, msg := range []string{"a", "b", "c"} {
		logger.Emit(auditlog.Event{Kind: auditlog.EventLinkSelected, Message: msg, Timestamp: base.Add(time.Duration(i) * time.Hour)})
	}

	events, err := logger.Query(auditlog.QueryFilter{After: base, Before: base.Add(2 * time.Hour)})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "b", events[0].Message)
	assert.True(t, events[0].Timestamp.Equal(base.Add(time.Hour)))
}
