package capture

import (
	"fmt"

	"github.com/aperture-field/capture.quality/internal/capture/l2coverage"
	"github.com/aperture-field/capture.quality/internal/capture/l5mode"
)

// PatchSnapshot is the persisted coverage of one patch: the raw bit
// patterns of both axes. Bits beyond each axis width are ignored on
// restore.
type PatchSnapshot struct {
	PatchID   string `json:"patch_id"`
	ThetaBits uint32 `json:"theta_bits"`
	PhiBits   uint32 `json:"phi_bits"`
}

// Snapshot is the minimal persistence contract for a session: the bitset
// pair per patch plus the capture state and last-transition timestamp.
// Storage of snapshots belongs to the caller; this core only defines the
// shape and the restore semantics.
type Snapshot struct {
	SessionID           string          `json:"session_id"`
	State               string          `json:"state"`
	LastTransitionNanos int64           `json:"last_transition_nanos"`
	Patches             []PatchSnapshot `json:"patches"`
}

// Snapshot captures the engine's session state. Patches are sorted by ID
// so two snapshots of identical state compare byte-equal when encoded.
func (e *Engine) Snapshot() Snapshot {
	coverages := e.tracker.Snapshot()
	patches := make([]PatchSnapshot, 0, len(coverages))
	for _, c := range coverages {
		patches = append(patches, PatchSnapshot{
			PatchID:   c.PatchID,
			ThetaBits: c.Theta.Bits(),
			PhiBits:   c.Phi.Bits(),
		})
	}
	return Snapshot{
		SessionID:           e.sessionID,
		State:               e.machine.State().String(),
		LastTransitionNanos: e.machine.LastTransitionNanos(),
		Patches:             patches,
	}
}

// RestoreSnapshot replaces the engine's session state with a previously
// captured snapshot. An unknown state name is a hard error; the engine is
// left unchanged on failure.
func (e *Engine) RestoreSnapshot(s Snapshot) error {
	if s.SessionID == "" {
		return fmt.Errorf("snapshot missing session ID")
	}
	state, ok := l5mode.ParseState(s.State)
	if !ok {
		return fmt.Errorf("snapshot has unknown state %q", s.State)
	}

	coverages := make([]l2coverage.PatchCoverage, 0, len(s.Patches))
	for _, p := range s.Patches {
		if p.PatchID == "" {
			return fmt.Errorf("snapshot patch missing ID")
		}
		c := l2coverage.PatchCoverage{
			PatchID: p.PatchID,
			Theta:   l2coverage.NewThetaBitset(),
			Phi:     l2coverage.NewPhiBitset(),
		}
		c.Theta.SetBits(p.ThetaBits)
		c.Phi.SetBits(p.PhiBits)
		coverages = append(coverages, c)
	}

	e.sessionID = s.SessionID
	e.machine.Restore(state, s.LastTransitionNanos)
	e.tracker.Restore(coverages)
	return nil
}
