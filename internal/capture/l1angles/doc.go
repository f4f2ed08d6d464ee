// Package l1angles owns Layer 1 (Angles) of the capture quality model.
//
// Responsibilities: mapping a normalized view direction onto 15°-wide
// angular buckets (24 theta buckets around the horizontal ring, 12 phi
// buckets over elevation) without any runtime trigonometric calls. All
// trigonometric values on the classification path are literal constants
// baked in at build time, which is what guarantees identical bucket indices
// across CPU architectures and libm implementations.
//
// Dependency rule: L1 depends only on the standard library. No tier, config
// or storage code is allowed in this package.
package l1angles
