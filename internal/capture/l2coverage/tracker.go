package l2coverage

import (
	"sort"
	"sync"
)

// PatchCoverage holds the theta and phi coverage sets for one spatial patch.
type PatchCoverage struct {
	PatchID string
	Theta   Bitset
	Phi     Bitset
}

// Spans holds the angular span of a patch on both axes, in buckets and
// degrees.
type Spans struct {
	ThetaBuckets int
	PhiBuckets   int
	ThetaDegrees float64
	PhiDegrees   float64
}

// Spans computes the current spans for the patch.
func (p *PatchCoverage) Spans() Spans {
	theta := p.Theta.CircularSpan()
	phi := p.Phi.LinearSpan()
	return Spans{
		ThetaBuckets: theta,
		PhiBuckets:   phi,
		ThetaDegrees: SpanDegrees(theta),
		PhiDegrees:   SpanDegrees(phi),
	}
}

// PatchTracker accumulates coverage bitsets across spatial patches. A patch
// is created at first observation, mutated additively every frame, and
// cleared on patch identity change or session end. Safe for concurrent use.
type PatchTracker struct {
	mu      sync.RWMutex
	patches map[string]*PatchCoverage
}

// NewPatchTracker creates an empty tracker.
func NewPatchTracker() *PatchTracker {
	return &PatchTracker{patches: make(map[string]*PatchCoverage)}
}

// Observe records the theta and phi buckets seen for a patch this frame,
// creating the patch on first observation.
func (t *PatchTracker) Observe(patchID string, thetaBucket, phiBucket int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.patches[patchID]
	if !ok {
		p = &PatchCoverage{
			PatchID: patchID,
			Theta:   NewThetaBitset(),
			Phi:     NewPhiBitset(),
		}
		t.patches[patchID] = p
	}
	p.Theta.Insert(thetaBucket)
	p.Phi.Insert(phiBucket)
}

// Spans returns the current spans for a patch. Unknown patches report zero
// spans rather than an error.
func (t *PatchTracker) Spans(patchID string) Spans {
	t.mu.RLock()
	defer t.mu.RUnlock()

	p, ok := t.patches[patchID]
	if !ok {
		return Spans{}
	}
	return p.Spans()
}

// ResetPatch clears both bitsets for a patch. Resetting an unknown patch is
// a no-op.
func (t *PatchTracker) ResetPatch(patchID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if p, ok := t.patches[patchID]; ok {
		p.Theta.Clear()
		p.Phi.Clear()
	}
}

// Reset clears all patch state for a new session.
func (t *PatchTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.patches = make(map[string]*PatchCoverage)
}

// PatchCount returns the number of tracked patches.
func (t *PatchTracker) PatchCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.patches)
}

// PatchIDs returns the tracked patch identities in sorted order.
func (t *PatchTracker) PatchIDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]string, 0, len(t.patches))
	for id := range t.patches {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Snapshot returns a copy of every patch's coverage, sorted by patch ID.
func (t *PatchTracker) Snapshot() []PatchCoverage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]PatchCoverage, 0, len(t.patches))
	for _, p := range t.patches {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PatchID < out[j].PatchID })
	return out
}

// Restore replaces the tracker's contents with the given patch coverages.
func (t *PatchTracker) Restore(patches []PatchCoverage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.patches = make(map[string]*PatchCoverage, len(patches))
	for _, p := range patches {
		cp := p
		t.patches[p.PatchID] = &cp
	}
}
