// Package l2coverage owns Layer 2 (Coverage) of the capture quality model.
//
// Responsibilities: accumulating observed angular buckets per spatial patch
// into compact bitsets, computing angular spans (circular for theta, linear
// for phi), and bulk span recomputation across patches with a bounded
// worker pool.
//
// Dependency rule: L2 may depend on L1 and the shared leaf packages, never
// on L3+. No SQL/database code is allowed in this package.
package l2coverage
