package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/aperture-field/capture.quality/internal/capture"
)

// SnapshotStore persists engine snapshots. Each session occupies one row
// in capture_sessions plus one row per patch in capture_patches; saving a
// snapshot replaces the session's previous contents atomically.
type SnapshotStore struct {
	db *sql.DB
}

// NewSnapshotStore creates a SnapshotStore backed by the given database.
func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Save writes a snapshot, replacing any previous snapshot of the same
// session. The write is a single transaction so a reader never observes
// a session row with patches from an older snapshot.
func (s *SnapshotStore) Save(snap capture.Snapshot) error {
	if snap.SessionID == "" {
		return fmt.Errorf("snapshot missing session ID")
	}

	return retryOnBusy(func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("begin snapshot save: %w", err)
		}
		defer tx.Rollback()

		_, err = tx.Exec(`
			INSERT INTO capture_sessions (session_id, state, last_transition_nanos, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(session_id) DO UPDATE SET
				state = excluded.state,
				last_transition_nanos = excluded.last_transition_nanos,
				updated_at = CURRENT_TIMESTAMP`,
			snap.SessionID, snap.State, snap.LastTransitionNanos,
		)
		if err != nil {
			return fmt.Errorf("upsert session: %w", err)
		}

		if _, err := tx.Exec(`DELETE FROM capture_patches WHERE session_id = ?`, snap.SessionID); err != nil {
			return fmt.Errorf("clear patches: %w", err)
		}
		for _, p := range snap.Patches {
			_, err := tx.Exec(`
				INSERT INTO capture_patches (session_id, patch_id, theta_bits, phi_bits)
				VALUES (?, ?, ?, ?)`,
				snap.SessionID, p.PatchID, int64(p.ThetaBits), int64(p.PhiBits),
			)
			if err != nil {
				return fmt.Errorf("insert patch %s: %w", p.PatchID, err)
			}
		}

		return tx.Commit()
	})
}

// Load reads the snapshot for a session. Patches come back sorted by
// patch ID, matching the engine's own snapshot ordering.
func (s *SnapshotStore) Load(sessionID string) (capture.Snapshot, error) {
	var snap capture.Snapshot
	row := s.db.QueryRow(`
		SELECT session_id, state, last_transition_nanos
		FROM capture_sessions
		WHERE session_id = ?`, sessionID)
	if err := row.Scan(&snap.SessionID, &snap.State, &snap.LastTransitionNanos); err != nil {
		if err == sql.ErrNoRows {
			return capture.Snapshot{}, fmt.Errorf("session %s not found", sessionID)
		}
		return capture.Snapshot{}, fmt.Errorf("scan session: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT patch_id, theta_bits, phi_bits
		FROM capture_patches
		WHERE session_id = ?
		ORDER BY patch_id`, sessionID)
	if err != nil {
		return capture.Snapshot{}, fmt.Errorf("query patches: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p capture.PatchSnapshot
		var theta, phi int64
		if err := rows.Scan(&p.PatchID, &theta, &phi); err != nil {
			return capture.Snapshot{}, fmt.Errorf("scan patch row: %w", err)
		}
		p.ThetaBits = uint32(theta)
		p.PhiBits = uint32(phi)
		snap.Patches = append(snap.Patches, p)
	}
	return snap, rows.Err()
}

// ListSessions returns all persisted session IDs, most recently updated
// first.
func (s *SnapshotStore) ListSessions() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT session_id FROM capture_sessions ORDER BY updated_at DESC, session_id`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete removes a session and its patches. The patch rows are deleted
// explicitly rather than left to the schema's cascade, so the result
// does not depend on foreign-key enforcement being active on whichever
// pooled connection runs the statement.
func (s *SnapshotStore) Delete(sessionID string) error {
	return retryOnBusy(func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("begin snapshot delete: %w", err)
		}
		defer tx.Rollback()

		if _, err := tx.Exec(`DELETE FROM capture_patches WHERE session_id = ?`, sessionID); err != nil {
			return fmt.Errorf("delete patches: %w", err)
		}
		result, err := tx.Exec(`DELETE FROM capture_sessions WHERE session_id = ?`, sessionID)
		if err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("session %s not found", sessionID)
		}
		return tx.Commit()
	})
}

// SaveAt is Save with an explicit wall-clock timestamp for the session
// row, used by replay tooling to preserve original capture times.
func (s *SnapshotStore) SaveAt(snap capture.Snapshot, at time.Time) error {
	if err := s.Save(snap); err != nil {
		return err
	}
	return retryOnBusy(func() error {
		_, err := s.db.Exec(`
			UPDATE capture_sessions SET updated_at = ? WHERE session_id = ?`,
			at.UTC(), snap.SessionID)
		return err
	})
}
