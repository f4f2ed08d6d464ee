package sweep

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/aperture-field/capture.quality/internal/capture/l3gain"
	"github.com/aperture-field/capture.quality/internal/tier"
)

// Request enumerates candidate gain specs: every threshold in Thresholds
// crossed with every width in Widths, with floor and direction taken from
// Base. Samples are recorded metric values the candidates are evaluated
// against.
type Request struct {
	Base       l3gain.Spec
	Thresholds RangeSpec
	Widths     RangeSpec
	Samples    []float64
	Workers    int
}

// Point summarizes one candidate spec's gain distribution over the
// samples.
type Point struct {
	Threshold       float64 `json:"threshold"`
	TransitionWidth float64 `json:"transition_width"`

	MeanGain   float64 `json:"mean_gain"`
	StdDevGain float64 `json:"stddev_gain"`
	P10        float64 `json:"p10"`
	P50        float64 `json:"p50"`
	P90        float64 `json:"p90"`

	// FastMaxError is the largest canonical-vs-fast divergence observed
	// for this candidate over the samples.
	FastMaxError float64 `json:"fast_max_error"`
}

// Run evaluates every candidate and returns points ordered by threshold,
// then width. Candidates are independent, so they are fanned out over a
// bounded worker pool and collected by index.
func Run(req Request) ([]Point, error) {
	if len(req.Samples) == 0 {
		return nil, fmt.Errorf("sweep needs at least one sample")
	}

	thresholds := req.Thresholds.Values()
	widths := req.Widths.Values()
	if len(thresholds) == 0 || len(widths) == 0 {
		return nil, fmt.Errorf("empty parameter range")
	}

	type candidate struct {
		idx  int
		spec l3gain.Spec
	}
	candidates := make([]candidate, 0, len(thresholds)*len(widths))
	for _, th := range thresholds {
		for _, w := range widths {
			spec := req.Base
			spec.Threshold = th
			spec.TransitionWidth = w
			if err := spec.Validate(); err != nil {
				return nil, fmt.Errorf("candidate threshold=%v width=%v: %w", th, w, err)
			}
			candidates = append(candidates, candidate{idx: len(candidates), spec: spec})
		}
	}

	workers := req.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	points := make([]Point, len(candidates))
	work := make(chan candidate)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range work {
				points[c.idx] = evaluate(c.spec, req.Samples)
			}
		}()
	}
	for _, c := range candidates {
		work <- c
	}
	close(work)
	wg.Wait()

	return points, nil
}

func evaluate(spec l3gain.Spec, samples []float64) Point {
	canonical := tier.MustNew(tier.Canonical)
	fast := tier.MustNew(tier.Fast)

	gains := make([]float64, len(samples))
	maxErr := 0.0
	for i, x := range samples {
		g := l3gain.Gain(canonical, spec, x)
		gains[i] = g

		diff := g - l3gain.Gain(fast, spec, x)
		if diff < 0 {
			diff = -diff
		}
		if diff > maxErr {
			maxErr = diff
		}
	}

	sorted := append([]float64(nil), gains...)
	sort.Float64s(sorted)

	return Point{
		Threshold:       spec.Threshold,
		TransitionWidth: spec.TransitionWidth,
		MeanGain:        stat.Mean(gains, nil),
		StdDevGain:      stat.StdDev(gains, nil),
		P10:             stat.Quantile(0.1, stat.Empirical, sorted, nil),
		P50:             stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:             stat.Quantile(0.9, stat.Empirical, sorted, nil),
		FastMaxError:    maxErr,
	}
}
