package l3gain

import "sync"

// Fast-tier lookup table parameters. The table spans z in [-tableZMax,
// tableZMax]; beyond that the logistic is saturated to the edge entries.
const (
	tableSize = 4096
	tableZMax = 16.0
)

// FastMaxError is the documented absolute error bound of the fast tier
// against the canonical logistic. Fast-tier results are validated only
// against this bound and monotonicity, never exact equality.
const FastMaxError = 1e-4

var (
	fastOnce  sync.Once
	fastTable [tableSize + 1]float64
)

// buildFastTable samples the canonical logistic once at startup, then runs
// a repair pass enforcing table[i+1] >= table[i]. The logistic is monotonic
// in exact arithmetic but floating rounding of the samples can invert
// adjacent entries; any inversion is corrected by clamping upward to the
// previous entry so interpolation stays monotonic.
func buildFastTable() {
	for i := 0; i <= tableSize; i++ {
		z := -tableZMax + float64(i)*(2*tableZMax/tableSize)
		fastTable[i] = stableLogistic(z)
	}
	for i := 1; i <= tableSize; i++ {
		if fastTable[i] < fastTable[i-1] {
			fastTable[i] = fastTable[i-1]
		}
	}
}

// fastLogistic approximates the logistic by linear interpolation over the
// precomputed table. Inputs at or beyond the domain edges saturate exactly
// to the edge entries.
func fastLogistic(z float64) float64 {
	fastOnce.Do(buildFastTable)

	if z <= -tableZMax {
		return fastTable[0]
	}
	if z >= tableZMax {
		return fastTable[tableSize]
	}

	pos := (z + tableZMax) / (2 * tableZMax) * tableSize
	idx := int(pos)
	if idx >= tableSize {
		idx = tableSize - 1
	}
	frac := pos - float64(idx)
	low := fastTable[idx]
	high := fastTable[idx+1]

	// Three separate statements, not one expression: Go may contract
	// low+diff*frac into a fused multiply-add, and whether it does varies
	// by architecture and build flags. Forcing each intermediate through a
	// variable pins one rounding per operation on every platform.
	diff := high - low
	scaled := diff * frac
	return low + scaled
}
