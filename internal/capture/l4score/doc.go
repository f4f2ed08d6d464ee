// Package l4score owns Layer 4 (Scoring) of the capture quality model.
//
// Responsibilities: grouping per-metric gains into named sub-scores and
// multiplying them into the composite quality value. The composition is
// multiplicative, not max/sum/average: any one severely failing dimension
// collapses the whole score, while each gain's configured floor keeps a
// merely mediocre dimension from zeroing everything.
//
// Dependency rule: L4 may depend on L1-L3 and the shared leaf packages,
// never on L5+.
package l4score
