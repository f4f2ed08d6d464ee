package l1angles

import "math"

// ShadowVerifier receives the zero-trig classification result alongside a
// trig-based reference result for the same direction. It is a side-effect
// only diagnostic hook: callers install it under an explicit debug flag and
// it is never invoked on the production path.
type ShadowVerifier func(dx, dz float64, zeroTrig, trigRef int)

// ReferenceTheta computes the theta bucket using math.Atan2. It exists only
// to cross-check the zero-trig path in debug builds and tests; its result
// is not reproducible across libm implementations and must never feed the
// scoring path.
func ReferenceTheta(dx, dz float64) int {
	mag := math.Sqrt(dx*dx + dz*dz)
	if mag < DegenerateMagnitude {
		return 0
	}
	deg := math.Atan2(dz, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	bucket := int(math.Round(deg/BucketDegrees)) % ThetaBuckets
	return bucket
}

// ShadowCheckTheta classifies via the zero-trig path and, if a verifier is
// installed, also computes the trig reference and reports both to the hook.
// A nil verifier costs a single branch.
func ShadowCheckTheta(dx, dz float64, verify ShadowVerifier) int {
	bucket := ClassifyThetaQuadrant(dx, dz)
	if verify != nil {
		verify(dx, dz, bucket, ReferenceTheta(dx, dz))
	}
	return bucket
}
