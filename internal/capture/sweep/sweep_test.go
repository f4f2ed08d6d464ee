package sweep

import (
	"math"
	"testing"

	"github.com/aperture-field/capture.quality/internal/capture/l3gain"
)

func TestParseRangeSpec(t *testing.T) {
	tests := []struct {
		in      string
		want    RangeSpec
		wantErr bool
	}{
		{"0.2:0.6:0.1", RangeSpec{Min: 0.2, Max: 0.6, Step: 0.1}, false},
		{" 1 : 2 : 0.5 ", RangeSpec{Min: 1, Max: 2, Step: 0.5}, false},
		{"0.2:0.6", RangeSpec{}, true},
		{"a:0.6:0.1", RangeSpec{}, true},
		{"0.2:0.6:0", RangeSpec{}, true},
		{"0.2:0.6:-0.1", RangeSpec{}, true},
	}
	for _, tt := range tests {
		got, err := ParseRangeSpec(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRangeSpec(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseRangeSpec(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestRangeValues(t *testing.T) {
	vals := RangeSpec{Min: 0.2, Max: 0.6, Step: 0.1}.Values()
	want := []float64{0.2, 0.3, 0.4, 0.5, 0.6}
	if len(vals) != len(want) {
		t.Fatalf("got %d values %v, want %d", len(vals), vals, len(want))
	}
	for i := range want {
		if math.Abs(vals[i]-want[i]) > 1e-9 {
			t.Errorf("value[%d] = %v, want %v", i, vals[i], want[i])
		}
	}

	if got := (RangeSpec{Min: 2, Max: 1, Step: 0.1}).Values(); got != nil {
		t.Errorf("inverted range produced %v, want nil", got)
	}
	if got := (RangeSpec{Min: 0, Max: 1e9, Step: 1e-6}).Values(); got != nil {
		t.Errorf("oversized range produced %d values, want nil", len(got))
	}
}

func TestRunProducesGridCrossProduct(t *testing.T) {
	points, err := Run(Request{
		Base:       l3gain.Spec{Floor: 0.1, Favorable: l3gain.FavorableLow},
		Thresholds: RangeSpec{Min: 0.3, Max: 0.5, Step: 0.1},
		Widths:     RangeSpec{Min: 0.2, Max: 0.3, Step: 0.1},
		Samples:    []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6},
		Workers:    3,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("got %d points, want 3 thresholds x 2 widths = 6", len(points))
	}

	// Order is threshold-major, width-minor.
	if points[0].Threshold != 0.3 || points[0].TransitionWidth != 0.2 {
		t.Errorf("first point = (%v, %v), want (0.3, 0.2)",
			points[0].Threshold, points[0].TransitionWidth)
	}
	if points[5].Threshold != 0.5 || points[5].TransitionWidth != 0.3 {
		t.Errorf("last point = (%v, %v), want (0.5, 0.3)",
			points[5].Threshold, points[5].TransitionWidth)
	}
}

func TestRunSummaryStatistics(t *testing.T) {
	points, err := Run(Request{
		Base:       l3gain.Spec{Floor: 0, Favorable: l3gain.FavorableLow},
		Thresholds: RangeSpec{Min: 0.48, Max: 0.48, Step: 1},
		Widths:     RangeSpec{Min: 0.3, Max: 0.3, Step: 1},
		Samples:    []float64{0.1, 0.2, 0.3, 0.48, 0.7, 0.9},
		Workers:    1,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	p := points[0]

	if p.MeanGain <= 0 || p.MeanGain >= 1 {
		t.Errorf("mean gain = %v, want strictly inside (0, 1)", p.MeanGain)
	}
	if p.StdDevGain <= 0 {
		t.Errorf("stddev = %v, want positive for mixed samples", p.StdDevGain)
	}
	if p.P10 > p.P50 || p.P50 > p.P90 {
		t.Errorf("quantiles not ordered: p10=%v p50=%v p90=%v", p.P10, p.P50, p.P90)
	}
	if p.FastMaxError > l3gain.FastMaxError {
		t.Errorf("fast max error %v exceeds documented bound %v",
			p.FastMaxError, l3gain.FastMaxError)
	}
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	req := Request{
		Base:       l3gain.Spec{Floor: 0.05, Favorable: l3gain.FavorableHigh},
		Thresholds: RangeSpec{Min: 10, Max: 30, Step: 5},
		Widths:     RangeSpec{Min: 5, Max: 15, Step: 5},
		Samples:    []float64{2, 8, 14, 22, 35, 50},
	}

	req.Workers = 1
	serial, err := Run(req)
	if err != nil {
		t.Fatalf("Run workers=1: %v", err)
	}
	req.Workers = 8
	parallel, err := Run(req)
	if err != nil {
		t.Fatalf("Run workers=8: %v", err)
	}

	for i := range serial {
		if serial[i] != parallel[i] {
			t.Errorf("point %d differs across worker counts: %+v vs %+v",
				i, serial[i], parallel[i])
		}
	}
}

func TestRunRejectsBadRequests(t *testing.T) {
	base := l3gain.Spec{Favorable: l3gain.FavorableLow}

	_, err := Run(Request{Base: base, Thresholds: RangeSpec{Min: 1, Max: 2, Step: 1}, Widths: RangeSpec{Min: 1, Max: 1, Step: 1}})
	if err == nil {
		t.Error("expected error for empty samples")
	}

	_, err = Run(Request{Base: base, Samples: []float64{1}, Widths: RangeSpec{Min: 1, Max: 1, Step: 1}})
	if err == nil {
		t.Error("expected error for empty threshold range")
	}

	// A width range that includes zero is a validation error, not a skip.
	_, err = Run(Request{
		Base:       base,
		Thresholds: RangeSpec{Min: 1, Max: 1, Step: 1},
		Widths:     RangeSpec{Min: 0, Max: 1, Step: 0.5},
		Samples:    []float64{1},
	})
	if err == nil {
		t.Error("expected error for zero transition width candidate")
	}
}
