// Package store persists player progress, game events, broadcast messages
// and the activity log in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: not found")

// Store holds the SQL driver and provides access to repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	seq *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		drv.Close()
		return nil, err
	}

	return &Store{db: db, drv: drv, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// UserRepo returns a UserRepo backed by this store.
func (s *Store) UserRepo() UserRepo {
	return &userRepo{drv: s.drv}
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{drv: s.drv, seq: s.seq}
}

// MessageRepo returns a MessageRepo backed by this store.
func (s *Store) MessageRepo() MessageRepo {
	return &messageRepo{drv: s.drv}
}

// ActivityRepo returns an ActivityRepo backed by this store.
func (s *Store) ActivityRepo() ActivityRepo {
	return &activityRepo{drv: s.drv}
}

// Reset deletes every row of every table and restarts the event sequence.
func (s *Store) Reset(ctx context.Context) error {
	for _, t := range tables {
		if _, err := execQuery(ctx, s.drv, builder().Delete(t.Name)); err != nil {
			return fmt.Errorf("reset %s: %w", t.Name, err)
		}
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE global_sequence SET next_val = 1 WHERE id = 1`); err != nil {
		return fmt.Errorf("reset sequence: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. GEOQUEST_DB environment variable
// 2. $XDG_DATA_HOME/geoquest/geoquest.db
// 3. ~/.local/share/geoquest/geoquest.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("GEOQUEST_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "geoquest", "geoquest.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func execQuery(ctx context.Context, drv dialect.ExecQuerier, q entsql.Querier) (sql.Result, error) {
	query, args := q.Query()
	var res sql.Result
	if err := drv.Exec(ctx, query, args, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// selectQuery runs q and returns its rows. Callers close the rows.
func selectQuery(ctx context.Context, drv dialect.ExecQuerier, q entsql.Querier) (*entsql.Rows, error) {
	query, args := q.Query()
	rows := &entsql.Rows{}
	if err := drv.Query(ctx, query, args, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// prune keeps the newest keep rows of table by id.
func prune(ctx context.Context, drv dialect.ExecQuerier, table string, keep int) error {
	query := fmt.Sprintf(
		"DELETE FROM `%s` WHERE `id` NOT IN (SELECT `id` FROM `%s` ORDER BY `id` DESC LIMIT ?)",
		table, table,
	)
	var res sql.Result
	if err := drv.Exec(ctx, query, []any{keep}, &res); err != nil {
		return fmt.Errorf("prune %s: %w", table, err)
	}
	return nil
}
