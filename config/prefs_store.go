package config

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/kastheco/navrail/log"
	"github.com/kastheco/navrail/nav"
	_ "modernc.org/sqlite" // register sqlite driver
)

const preferencesDBFile = "preferences.db"

const preferenceSchema = `
CREATE TABLE IF NOT EXISTS preferences (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// PreferenceStore is a persistent nav.Preferences with housekeeping on top.
type PreferenceStore interface {
	nav.Preferences
	Delete(key string)
	All() map[string]string
	Close() error
}

// SQLitePreferenceStore is a PreferenceStore backed by a SQLite database.
type SQLitePreferenceStore struct {
	db *sql.DB
}

// PreferencesPath returns the preference database location: the configured
// override, else a file under the XDG data directory.
func PreferencesPath(cfg *Config) (string, error) {
	if cfg != nil && cfg.PreferencesDB != "" {
		if cfg.PreferencesDB == ":memory:" || filepath.IsAbs(cfg.PreferencesDB) {
			return cfg.PreferencesDB, nil
		}
		dir, err := GetConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, cfg.PreferencesDB), nil
	}
	path, err := xdg.DataFile(filepath.Join(appName, preferencesDBFile))
	if err != nil {
		return "", fmt.Errorf("resolve preferences path: %w", err)
	}
	return path, nil
}

// NewSQLitePreferenceStore opens (or creates) a SQLite database at dbPath and
// runs schema migrations. Use ":memory:" for an in-memory database (useful in tests).
func NewSQLitePreferenceStore(dbPath string) (*SQLitePreferenceStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps ":memory:" a single database.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read performance (not applicable for :memory:).
	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("set WAL mode: %w", err)
		}
	}

	if _, err := db.Exec(preferenceSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run schema migrations: %w", err)
	}

	return &SQLitePreferenceStore{db: db}, nil
}

// OpenPreferenceStore opens the store configured by cfg.
func OpenPreferenceStore(cfg *Config) (*SQLitePreferenceStore, error) {
	path, err := PreferencesPath(cfg)
	if err != nil {
		return nil, err
	}
	return NewSQLitePreferenceStore(path)
}

// DB exposes the connection so other tables can share the file.
func (s *SQLitePreferenceStore) DB() *sql.DB {
	return s.db
}

// Close releases the database connection.
func (s *SQLitePreferenceStore) Close() error {
	return s.db.Close()
}

// Get returns the stored value for key.
func (s *SQLitePreferenceStore) Get(key string) (string, bool) {
	const q = `SELECT value FROM preferences WHERE key = ?`
	var v string
	err := s.db.QueryRow(q, key).Scan(&v)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.WarningLog.Printf("read preference %s: %v", key, err)
		}
		return "", false
	}
	return v, true
}

// Set stores value under key, replacing any previous value. Failures are
// logged; the widget keeps its in-memory state either way.
func (s *SQLitePreferenceStore) Set(key, value string) {
	const q = `INSERT OR REPLACE INTO preferences (key, value, updated_at) VALUES (?, ?, ?)`
	updatedAt := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.Exec(q, key, value, updatedAt); err != nil {
		log.WarningLog.Printf("write preference %s: %v", key, err)
	}
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *SQLitePreferenceStore) Delete(key string) {
	const q = `DELETE FROM preferences WHERE key = ?`
	if _, err := s.db.Exec(q, key); err != nil {
		log.WarningLog.Printf("delete preference %s: %v", key, err)
	}
}

// All returns every stored preference.
func (s *SQLitePreferenceStore) All() map[string]string {
	const q = `SELECT key, value FROM preferences ORDER BY key`
	out := make(map[string]string)
	rows, err := s.db.Query(q)
	if err != nil {
		log.WarningLog.Printf("list preferences: %v", err)
		return out
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			log.WarningLog.Printf("scan preference: %v", err)
			continue
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		log.WarningLog.Printf("list preferences: %v", err)
	}
	return out
}

// ResetNavPreferences deletes both sidebar preferences so the next start
// falls back to the viewport rule.
func ResetNavPreferences(s PreferenceStore) {
	s.Delete(nav.PrefCollapsed)
	s.Delete(nav.PrefShowMore)
}

// Verify SQLitePreferenceStore implements PreferenceStore at compile time.
var _ PreferenceStore = (*SQLitePreferenceStore)(nil)
