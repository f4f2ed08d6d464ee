package l2coverage

import "testing"

func TestBitsetInsertContainsCount(t *testing.T) {
	b := NewThetaBitset()
	if !b.IsEmpty() {
		t.Fatal("new bitset should be empty")
	}

	b.Insert(0)
	b.Insert(5)
	b.Insert(23)
	b.Insert(5) // idempotent

	if got := b.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	for _, bucket := range []int{0, 5, 23} {
		if !b.Contains(bucket) {
			t.Errorf("Contains(%d) = false, want true", bucket)
		}
	}
	if b.Contains(1) {
		t.Error("Contains(1) = true, want false")
	}

	// Out-of-range inserts are ignored.
	b.Insert(-1)
	b.Insert(24)
	if got := b.Count(); got != 3 {
		t.Errorf("Count() after out-of-range inserts = %d, want 3", got)
	}

	b.Clear()
	if !b.IsEmpty() || b.Count() != 0 {
		t.Error("Clear() did not empty the bitset")
	}
}

func TestCircularSpanTheta(t *testing.T) {
	cases := []struct {
		name    string
		buckets []int
		want    int
	}{
		{"empty", nil, 0},
		{"single", []int{7}, 0},
		{"evenly spaced quarters wrap the full ring", []int{0, 6, 12, 18}, 24},
		{"opposite pair", []int{0, 12}, 12},
		{"adjacent pair", []int{3, 4}, 1},
		{"wrap across index 23 to 0", []int{22, 23, 0, 1}, 3},
		{"all set", func() []int {
			all := make([]int, 24)
			for i := range all {
				all[i] = i
			}
			return all
		}(), 24},
		{"cluster plus outlier", []int{0, 1, 2, 13}, 13},
		{"thirds exceed the covered-gap tolerance", []int{0, 8, 16}, 16},
		{"quarter-ring gaps count as covered", []int{0, 6, 12, 18}, 24},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewThetaBitset()
			for _, bucket := range c.buckets {
				b.Insert(bucket)
			}
			if got := b.CircularSpan(); got != c.want {
				t.Errorf("CircularSpan(%v) = %d, want %d", c.buckets, got, c.want)
			}
		})
	}
}

func TestLinearSpanPhi(t *testing.T) {
	cases := []struct {
		name    string
		buckets []int
		want    int
	}{
		{"empty", nil, 0},
		{"single", []int{6}, 0},
		{"first and last", []int{0, 11}, 11},
		{"adjacent", []int{4, 5}, 1},
		{"span is last minus first, not plus one", []int{2, 5, 9}, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewPhiBitset()
			for _, bucket := range c.buckets {
				b.Insert(bucket)
			}
			if got := b.LinearSpan(); got != c.want {
				t.Errorf("LinearSpan(%v) = %d, want %d", c.buckets, got, c.want)
			}
		})
	}
}

func TestSpanDegrees(t *testing.T) {
	if got := SpanDegrees(24); got != 360 {
		t.Errorf("SpanDegrees(24) = %v, want 360", got)
	}
	if got := SpanDegrees(0); got != 0 {
		t.Errorf("SpanDegrees(0) = %v, want 0", got)
	}
	if got := SpanDegrees(12); got != 180 {
		t.Errorf("SpanDegrees(12) = %v, want 180", got)
	}
}

func TestBitsetSnapshotRoundTrip(t *testing.T) {
	b := NewThetaBitset()
	b.Insert(0)
	b.Insert(17)

	var restored Bitset = NewThetaBitset()
	restored.SetBits(b.Bits())
	if restored.Bits() != b.Bits() {
		t.Errorf("restored bits %#x != original %#x", restored.Bits(), b.Bits())
	}

	// Restoring theta bits into a phi set masks off the high bits.
	phi := NewPhiBitset()
	phi.SetBits(b.Bits())
	if phi.Contains(17) {
		t.Error("phi bitset should mask bits beyond its width")
	}
	if !phi.Contains(0) {
		t.Error("phi bitset lost an in-range bit")
	}
}

func TestCountMatchesPopulation(t *testing.T) {
	b := NewThetaBitset()
	for i := 0; i < 24; i += 2 {
		b.Insert(i)
		want := i/2 + 1
		if got := b.Count(); got != want {
			t.Fatalf("Count() = %d after %d inserts, want %d", got, want, want)
		}
	}
}
