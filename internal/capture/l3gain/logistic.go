package l3gain

import "math"

// stableLogistic evaluates 1/(1+e^-z) with a sign branch so neither branch
// ever exponentiates a large positive argument. The unguarded form
// overflows e^-z to +Inf for large negative z and returns 0/0-adjacent
// garbage on some platforms; the branched form stays finite for every
// float64 input.
func stableLogistic(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// clampGain clamps a raw logistic response into [floor, 1].
func clampGain(g, floor float64) float64 {
	if g < floor {
		return floor
	}
	if g > 1 {
		return 1
	}
	return g
}
