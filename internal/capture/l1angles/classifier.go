package l1angles

import "math"

// DegenerateMagnitude is the horizontal magnitude below which a direction is
// treated as degenerate (looking straight up or down). Degenerate inputs
// resolve to theta bucket 0 rather than an error: this is a normal part of
// ordinary use on a real-time sensor path.
const DegenerateMagnitude = 1e-10

// ClassifyPhi maps the vertical component of a unit direction vector to a
// phi bucket in [0, PhiBuckets-1]. Inputs outside [-1, 1] are clamped at
// the domain boundary. The mapping is total and monotonic non-decreasing
// in dy.
func ClassifyPhi(dy float64) int {
	if dy < -1 {
		dy = -1
	} else if dy > 1 {
		dy = 1
	}

	// Greatest k with phiBoundaries[k] <= dy, capped at the last bucket.
	lo, hi := 0, len(phiBoundaries)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if phiBoundaries[mid] <= dy {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo > PhiBuckets-1 {
		lo = PhiBuckets - 1
	}
	return lo
}

// ClassifyTheta maps the horizontal components of a direction vector to a
// theta bucket in [0, ThetaBuckets-1] by brute-force arg-max of the dot
// product against all 24 bucket-center unit vectors. Ties break to the
// lowest bucket index. Degenerate directions return bucket 0.
//
// math.Sqrt is correctly rounded per IEEE 754 and therefore safe on the
// deterministic path; no trigonometric calls occur here.
func ClassifyTheta(dx, dz float64) int {
	mag := math.Sqrt(dx*dx + dz*dz)
	if mag < DegenerateMagnitude {
		return 0
	}
	nx := dx / mag
	nz := dz / mag

	best := 0
	bestDot := nx*thetaVectors[0][0] + nz*thetaVectors[0][1]
	for i := 1; i < ThetaBuckets; i++ {
		dot := nx*thetaVectors[i][0] + nz*thetaVectors[i][1]
		if dot > bestDot {
			best = i
			bestDot = dot
		}
	}
	return best
}

// ClassifyThetaQuadrant is the optimized variant of ClassifyTheta. It picks
// the quadrant from the component signs and searches only that quadrant's
// candidate buckets (the six interior buckets plus both boundary buckets,
// so adjacent-bucket ties at quadrant edges resolve identically to the
// brute-force search). Equivalence with ClassifyTheta for every input is a
// tested property.
func ClassifyThetaQuadrant(dx, dz float64) int {
	mag := math.Sqrt(dx*dx + dz*dz)
	if mag < DegenerateMagnitude {
		return 0
	}
	nx := dx / mag
	nz := dz / mag

	var start int
	switch {
	case nx >= 0 && nz >= 0:
		start = 0 // [0°, 90°]
	case nx < 0 && nz >= 0:
		start = 6 // [90°, 180°]
	case nx < 0 && nz < 0:
		start = 12 // [180°, 270°]
	default:
		start = 18 // [270°, 360°)
	}

	best := -1
	bestDot := math.Inf(-1)
	for offset := 0; offset <= 6; offset++ {
		i := (start + offset) % ThetaBuckets
		dot := nx*thetaVectors[i][0] + nz*thetaVectors[i][1]
		if dot > bestDot || (dot == bestDot && i < best) {
			best = i
			bestDot = dot
		}
	}
	return best
}
