package l3gain

import "fmt"

// Favorable states which direction of a metric is good: "high" metrics
// (sharpness, span) gain toward 1 as the value rises above the threshold,
// "low" metrics (RMS errors, exposure ratios) gain toward 1 as the value
// falls below it.
type Favorable string

const (
	FavorableHigh Favorable = "high"
	FavorableLow  Favorable = "low"
)

// IsValid returns true if the direction is a known valid value.
func (f Favorable) IsValid() bool {
	return f == FavorableHigh || f == FavorableLow
}

// Spec is the immutable per-metric gain parameterisation, loaded once from
// a named profile at process start.
type Spec struct {
	// Threshold is the metric value that maps to gain 0.5.
	Threshold float64 `json:"threshold"`
	// TransitionWidth is the width of the window around the threshold that
	// approximates the 10%-90% response region of the logistic.
	TransitionWidth float64 `json:"transition_width"`
	// Floor is the minimum gain this metric can contribute. A positive
	// floor prevents one merely mediocre dimension from collapsing the
	// composite score to zero.
	Floor float64 `json:"floor"`
	// Favorable states which direction of the metric is good.
	Favorable Favorable `json:"favorable"`
}

// Validate enforces the load-time invariants. A malformed spec would
// silently corrupt every subsequent score, so loading fails fast instead.
func (s Spec) Validate() error {
	if s.TransitionWidth <= 0 {
		return fmt.Errorf("transition_width must be positive, got %v", s.TransitionWidth)
	}
	if s.Floor < 0 || s.Floor >= 1 {
		return fmt.Errorf("floor must be in [0, 1), got %v", s.Floor)
	}
	if !s.Favorable.IsValid() {
		return fmt.Errorf("favorable must be %q or %q, got %q", FavorableHigh, FavorableLow, s.Favorable)
	}
	return nil
}

// logisticSpan rescales the transition window onto the logistic's argument:
// 4.4 ≈ 2·ln(9), the z-distance between the 10% and 90% response points,
// so [threshold-w/2, threshold+w/2] covers that region.
const logisticSpan = 4.4

// z maps a raw metric value onto the logistic argument for this spec.
func (s Spec) z(x float64) float64 {
	slope := s.TransitionWidth / logisticSpan
	z := (x - s.Threshold) / slope
	if s.Favorable == FavorableLow {
		z = -z
	}
	return z
}
