// Package db owns the sqlite database used to persist capture-session
// snapshots. The scoring core itself performs no I/O; persistence is a
// caller-side concern and lives entirely in this package and the stores
// built on it.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

// OpenDB opens (or creates) the sqlite database at path and applies the
// connection pragmas. It does not touch the schema; callers run
// migrations explicitly via MigrateUp.
//
// The pragmas ride in the DSN rather than a one-off Exec: Exec lands on
// a single pooled connection, and sqlite defaults foreign_keys and
// busy_timeout per connection, so a fresh pool connection would silently
// run without them. The driver applies _pragma parameters to every
// connection it opens.
func OpenDB(path string) (*DB, error) {
	dsn := "file:" + path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{sqlDB}, nil
}
