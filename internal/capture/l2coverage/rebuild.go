package l2coverage

import (
	"runtime"
	"sync"
)

// GateSpec is the minimum angular span a patch must reach on each axis to
// pass the coverage gate.
type GateSpec struct {
	MinThetaDegrees float64
	MinPhiDegrees   float64
}

// GateResult aggregates a bulk gate evaluation across all patches.
type GateResult struct {
	TotalPatches   int
	PassingPatches int
	// PassingFraction is PassingPatches / TotalPatches, or 0 with no patches.
	PassingFraction float64
}

// EvaluateGate recomputes spans for every patch with a bounded worker pool
// and returns the fraction of patches passing the gate. Workers partition
// by patch identity with no shared mutable state; the aggregate is read
// only after all workers have joined. workers <= 0 selects GOMAXPROCS.
func (t *PatchTracker) EvaluateGate(gate GateSpec, workers int) GateResult {
	patches := t.Snapshot()
	if len(patches) == 0 {
		return GateResult{}
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(patches) {
		workers = len(patches)
	}

	ids := make(chan int, len(patches))
	for i := range patches {
		ids <- i
	}
	close(ids)

	passed := make([]bool, len(patches))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range ids {
				spans := patches[i].Spans()
				passed[i] = spans.ThetaDegrees >= gate.MinThetaDegrees &&
					spans.PhiDegrees >= gate.MinPhiDegrees
			}
		}()
	}
	wg.Wait()

	result := GateResult{TotalPatches: len(patches)}
	for _, ok := range passed {
		if ok {
			result.PassingPatches++
		}
	}
	result.PassingFraction = float64(result.PassingPatches) / float64(result.TotalPatches)
	return result
}
