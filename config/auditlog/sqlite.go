package auditlog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

const auditSchema = `
CREATE TABLE IF NOT EXISTS nav_events (
	id        INTEGER PRIMARY KEY,
	kind      TEXT NOT NULL,
	timestamp TEXT NOT NULL,
	tree_file TEXT NOT NULL DEFAULT '',
	link_key  TEXT NOT NULL DEFAULT '',
	mode      TEXT NOT NULL DEFAULT '',
	message   TEXT NOT NULL DEFAULT '',
	detail    TEXT NOT NULL DEFAULT '',
	level     TEXT NOT NULL DEFAULT 'info'
);

CREATE INDEX IF NOT EXISTS idx_nav_events_ts ON nav_events(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_nav_events_link ON nav_events(link_key, timestamp DESC);
`

const (
	eventColumns = "id, kind, timestamp, tree_file, link_key, mode, message, detail, level"
	insertEvent  = `INSERT INTO nav_events
	(kind, timestamp, tree_file, link_key, mode, message, detail, level)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
)

const maxQueryLimit = 500

// SQLiteLogger is a Logger backed by a SQLite database.
type SQLiteLogger struct {
	db     *sql.DB
	insert *sql.Stmt
}

// NewSQLiteLogger opens (or creates) the nav history at dbPath. The file can
// be the preference database; the tables do not overlap. ":memory:" gives a
// throwaway history for tests.
func NewSQLiteLogger(dbPath string) (*SQLiteLogger, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open nav history %s: %w", dbPath, err)
	}
	// one connection keeps ":memory:" a single database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(auditSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create nav history tables: %w", err)
	}
	insert, err := db.Prepare(insertEvent)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare nav history insert: %w", err)
	}
	return &SQLiteLogger{db: db, insert: insert}, nil
}

// Emit stores e, stamping it with the current time when it has none. Write
// failures are dropped; history never blocks navigation.
func (l *SQLiteLogger) Emit(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	if e.Level == "" {
		e.Level = "info"
	}
	_, _ = l.insert.Exec(string(e.Kind), formatStamp(e.Timestamp),
		e.TreeFile, e.LinkKey, e.Mode, e.Message, e.Detail, e.Level)
}

// Query returns events matching f, newest first. At most 500 are returned.
func (l *SQLiteLogger) Query(f QueryFilter) ([]Event, error) {
	where, args := f.clause()
	limit := f.Limit
	if limit <= 0 || limit > maxQueryLimit {
		limit = maxQueryLimit
	}
	q := "SELECT " + eventColumns + " FROM nav_events" + where +
		" ORDER BY timestamp DESC, id DESC LIMIT ?"

	rows, err := l.db.Query(q, append(args, limit)...)
	if err != nil {
		return nil, fmt.Errorf("query nav history: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read nav history: %w", err)
	}
	return events, nil
}

// Prune deletes every event older than cutoff and reports how many went.
func (l *SQLiteLogger) Prune(cutoff time.Time) (int64, error) {
	res, err := l.db.Exec("DELETE FROM nav_events WHERE timestamp < ?", formatStamp(cutoff))
	if err != nil {
		return 0, fmt.Errorf("prune nav history: %w", err)
	}
	return res.RowsAffected()
}

// Close releases the database connection.
func (l *SQLiteLogger) Close() error {
	l.insert.Close()
	return l.db.Close()
}

// clause renders the filter as a WHERE clause, empty when nothing narrows it.
func (f QueryFilter) clause() (string, []any) {
	var (
		conds []string
		args  []any
	)
	eq := func(col, v string) {
		if v != "" {
			conds = append(conds, col+" = ?")
			args = append(args, v)
		}
	}
	eq("tree_file", f.TreeFile)
	eq("link_key", f.LinkKey)

	if len(f.Kinds) > 0 {
		marks := strings.TrimSuffix(strings.Repeat("?, ", len(f.Kinds)), ", ")
		conds = append(conds, "kind IN ("+marks+")")
		for _, k := range f.Kinds {
			args = append(args, string(k))
		}
	}
	if !f.After.IsZero() {
		conds = append(conds, "timestamp > ?")
		args = append(args, formatStamp(f.After))
	}
	if !f.Before.IsZero() {
		conds = append(conds, "timestamp < ?")
		args = append(args, formatStamp(f.Before))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanEvent(rows *sql.Rows) (Event, error) {
	var (
		e     Event
		kind  string
		stamp string
	)
	err := rows.Scan(&e.ID, &kind, &stamp, &e.TreeFile, &e.LinkKey, &e.Mode, &e.Message, &e.Detail, &e.Level)
	if err != nil {
		return Event{}, fmt.Errorf("scan nav event: %w", err)
	}
	e.Kind = EventKind(kind)
	e.Timestamp = parseStamp(stamp)
	return e, nil
}

// Stamps are stored as fixed-width UTC RFC3339 so text order is time order.
const stampLayout = "2006-01-02T15:04:05.000000000Z"

func formatStamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(stampLayout)
}

// parseStamp returns the zero time for anything it cannot read.
func parseStamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
