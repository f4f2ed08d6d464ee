// Package sqlite contains the SQLite repository for capture-session
// snapshots.
//
// All database read/write operations for session state and per-patch
// coverage belong here rather than in the scoring layers. This keeps the
// deterministic core free of SQL noise and makes it easy to swap storage
// backends for testing.
package sqlite
