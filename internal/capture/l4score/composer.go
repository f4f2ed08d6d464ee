package l4score

import (
	"github.com/aperture-field/capture.quality/internal/quant"
)

// Gains holds the normalized per-metric gains for one frame, each already
// clamped to its spec's [floor, 1] range by the gain layer.
type Gains struct {
	Reproj        float64
	Edge          float64
	ThetaSpan     float64
	PhiSpan       float64
	L2Plus        float64
	L3            float64
	Sharpness     float64
	OverExposure  float64
	UnderExposure float64
}

// SubScores holds the named sub-scores and the composite quality for one
// frame. Composite is the product of the three sub-scores; CompositeQ is
// the same value quantized at scale 1e12 for cross-platform comparison and
// persistence.
type SubScores struct {
	Geometry   float64
	Coverage   float64
	Basic      float64
	Composite  float64
	CompositeQ int64
}

// Compose multiplies the grouped gains into sub-scores and the composite
// quality value in [0, 1].
func Compose(g Gains) SubScores {
	geometry := g.Reproj * g.Edge
	coverage := g.ThetaSpan * g.PhiSpan * g.L2Plus * g.L3
	basic := g.Sharpness * g.OverExposure * g.UnderExposure
	composite := geometry * coverage * basic

	return SubScores{
		Geometry:   geometry,
		Coverage:   coverage,
		Basic:      basic,
		Composite:  composite,
		CompositeQ: quant.QuantizeUnit(composite),
	}
}
