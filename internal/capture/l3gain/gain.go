package l3gain

import (
	"github.com/aperture-field/capture.quality/internal/tier"
)

// Gain converts a raw metric value into a normalized gain in [floor, 1]
// under the given spec. The numeric backend is selected solely by the
// injected tier context; the fixed-point placeholder tier evaluates via the
// canonical path until an integer backend lands.
//
// Gain is total: out-of-range inputs saturate through the logistic rather
// than failing, because refusing to answer on a real-time sensor path is
// worse than a clamped best-effort answer.
func Gain(tc tier.Context, s Spec, x float64) float64 {
	z := s.z(x)

	var g float64
	switch tc.Backend() {
	case tier.Fast:
		g = fastLogistic(z)
	default:
		g = stableLogistic(z)
	}
	return clampGain(g, s.Floor)
}

// CountGain is Gain applied to an integer metric (feature counts).
func CountGain(tc tier.Context, s Spec, n int) float64 {
	return Gain(tc, s, float64(n))
}
