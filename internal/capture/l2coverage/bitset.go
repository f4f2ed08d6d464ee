package l2coverage

import (
	"math/bits"

	"github.com/aperture-field/capture.quality/internal/capture/l1angles"
)

// Bitset accumulates observed angular buckets for one axis of one patch.
// Bits are only ever set, never individually cleared; Clear resets the
// whole set on patch identity change or session end.
type Bitset struct {
	bits  uint32
	width int
}

// NewThetaBitset returns an empty 24-bit theta coverage set.
func NewThetaBitset() Bitset {
	return Bitset{width: l1angles.ThetaBuckets}
}

// NewPhiBitset returns an empty 12-bit phi coverage set.
func NewPhiBitset() Bitset {
	return Bitset{width: l1angles.PhiBuckets}
}

// Insert sets the bit for a bucket. Out-of-range buckets are ignored;
// inserting an already-set bucket is a no-op.
func (b *Bitset) Insert(bucket int) {
	if bucket < 0 || bucket >= b.width {
		return
	}
	b.bits |= 1 << uint(bucket)
}

// Contains reports whether a bucket has been observed.
func (b *Bitset) Contains(bucket int) bool {
	if bucket < 0 || bucket >= b.width {
		return false
	}
	return b.bits&(1<<uint(bucket)) != 0
}

// Count returns the number of observed buckets.
func (b *Bitset) Count() int {
	return bits.OnesCount32(b.bits)
}

// IsEmpty reports whether no bucket has been observed.
func (b *Bitset) IsEmpty() bool {
	return b.bits == 0
}

// Clear resets the set to empty.
func (b *Bitset) Clear() {
	b.bits = 0
}

// Width returns the number of buckets this set covers.
func (b *Bitset) Width() int {
	return b.width
}

// Bits returns the raw bit pattern for snapshotting.
func (b *Bitset) Bits() uint32 {
	return b.bits
}

// SetBits restores a raw bit pattern from a snapshot; bits beyond the set
// width are masked off.
func (b *Bitset) SetBits(raw uint32) {
	b.bits = raw & (1<<uint(b.width) - 1)
}

// CircularSpan treats the set as a ring and returns the covered span in
// buckets. Zero or one bit set spans 0; a full ring spans the whole width.
// Otherwise the span is the width minus the largest angular gap between
// circularly consecutive observations, where a gap is the bucket index
// distance across a run of unset bits (run length + 1) and the run may wrap
// across the end of the ring. Gaps of a quarter ring or less count as
// covered, so evenly spread observations (e.g. theta buckets 0, 6, 12, 18)
// span the full ring.
func (b *Bitset) CircularSpan() int {
	n := b.Count()
	if n <= 1 {
		return 0
	}
	if n == b.width {
		return b.width
	}

	// Walk the ring twice so a run of unset bits crossing the wrap point is
	// seen as one contiguous run. A run can never reach 2*width here since
	// at least one bit is set.
	bridge := b.width / 4
	maxGap, run := 0, 0
	for i := 0; i < 2*b.width; i++ {
		if b.bits&(1<<uint(i%b.width)) == 0 {
			run++
			if gap := run + 1; gap > bridge && gap > maxGap {
				maxGap = gap
			}
		} else {
			run = 0
		}
	}
	if maxGap == 0 {
		return b.width
	}
	if maxGap > b.width {
		maxGap = b.width
	}
	return b.width - maxGap
}

// LinearSpan returns the non-wrapping covered span in buckets: the distance
// between the first and last observed buckets. Note this is last-first, not
// last-first+1; a single observed bucket spans 0 by definition.
func (b *Bitset) LinearSpan() int {
	if b.Count() <= 1 {
		return 0
	}
	first := bits.TrailingZeros32(b.bits)
	last := 31 - bits.LeadingZeros32(b.bits)
	return last - first
}

// SpanDegrees converts a bucket span to degrees.
func SpanDegrees(span int) float64 {
	return float64(span) * l1angles.BucketDegrees
}
