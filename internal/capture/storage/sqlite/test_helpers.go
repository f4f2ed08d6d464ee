package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/aperture-field/capture.quality/internal/db"
)

// setupSnapshotTestDB creates a migrated temp database. Using the real
// migrations keeps the test schema from drifting away from production.
func setupSnapshotTestDB(t *testing.T) *db.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.OpenDB(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := database.MigrateUp(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return database
}
