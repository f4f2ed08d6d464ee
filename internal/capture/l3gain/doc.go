// Package l3gain owns Layer 3 (Gains) of the capture quality model.
//
// Responsibilities: converting a raw per-frame metric plus a
// (threshold, transition width, floor) spec into a normalized gain via a
// numerically stable logistic response, under an explicitly injected
// determinism tier. "Cliff" metrics (steep transition, zero floor) and
// "floor" metrics (gentle transition, positive floor) are the same function
// with different parameters, not different algorithms.
//
// Dependency rule: L3 may depend on L1-L2 and the shared leaf packages
// (tier, quant), never on L4+.
package l3gain
