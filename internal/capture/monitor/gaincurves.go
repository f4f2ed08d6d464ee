// Package monitor renders diagnostic visualisations of gain curves. These
// are bench tools: nothing here runs on the frame evaluation path.
package monitor

import (
	"fmt"
	"image/color"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/aperture-field/capture.quality/internal/capture/l3gain"
	"github.com/aperture-field/capture.quality/internal/tier"
)

// CurveRequest describes the metric axis to sweep and the spec to plot.
type CurveRequest struct {
	Title   string
	Spec    l3gain.Spec
	MinX    float64
	MaxX    float64
	Samples int
}

func (r CurveRequest) validate() error {
	if r.Samples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", r.Samples)
	}
	if r.MaxX <= r.MinX {
		return fmt.Errorf("max x %v must exceed min x %v", r.MaxX, r.MinX)
	}
	return r.Spec.Validate()
}

// sampleCurve evaluates the spec at evenly spaced inputs under one tier.
func sampleCurve(tc tier.Context, r CurveRequest) ([]float64, []float64) {
	xs := make([]float64, r.Samples)
	ys := make([]float64, r.Samples)
	step := (r.MaxX - r.MinX) / float64(r.Samples-1)
	for i := 0; i < r.Samples; i++ {
		x := r.MinX + float64(i)*step
		xs[i] = x
		ys[i] = l3gain.Gain(tc, r.Spec, x)
	}
	return xs, ys
}

// RenderGainCurvesHTML writes an interactive chart comparing the
// canonical and fast backends over the requested axis.
func RenderGainCurvesHTML(w io.Writer, r CurveRequest) error {
	if err := r.validate(); err != nil {
		return err
	}

	xs, canonYs := sampleCurve(tier.MustNew(tier.Canonical), r)
	_, fastYs := sampleCurve(tier.MustNew(tier.Fast), r)

	xAxis := make([]string, len(xs))
	canonData := make([]opts.LineData, len(xs))
	fastData := make([]opts.LineData, len(xs))
	for i := range xs {
		xAxis[i] = fmt.Sprintf("%.4g", xs[i])
		canonData[i] = opts.LineData{Value: canonYs[i]}
		fastData[i] = opts.LineData{Value: fastYs[i]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Gain Curves", Width: "1200px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{
			Title: r.Title,
			Subtitle: fmt.Sprintf("threshold=%v width=%v floor=%v favorable=%s",
				r.Spec.Threshold, r.Spec.TransitionWidth, r.Spec.Floor, r.Spec.Favorable),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 1, Name: "gain"}),
	)
	line.SetXAxis(xAxis)
	line.AddSeries("canonical", canonData)
	line.AddSeries("fast", fastData)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// PlotGainCurvePNG saves a static comparison plot of both backends.
func PlotGainCurvePNG(path string, r CurveRequest) error {
	if err := r.validate(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = "metric value"
	p.Y.Label.Text = "gain"
	p.Y.Min, p.Y.Max = 0, 1

	xs, canonYs := sampleCurve(tier.MustNew(tier.Canonical), r)
	_, fastYs := sampleCurve(tier.MustNew(tier.Fast), r)

	canonPts := make(plotter.XYs, len(xs))
	fastPts := make(plotter.XYs, len(xs))
	for i := range xs {
		canonPts[i] = plotter.XY{X: xs[i], Y: canonYs[i]}
		fastPts[i] = plotter.XY{X: xs[i], Y: fastYs[i]}
	}

	canonLine, err := plotter.NewLine(canonPts)
	if err != nil {
		return err
	}
	canonLine.Width = vg.Points(1.5)
	canonLine.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(canonLine)
	p.Legend.Add("canonical", canonLine)

	fastLine, err := plotter.NewLine(fastPts)
	if err != nil {
		return err
	}
	fastLine.Width = vg.Points(1)
	fastLine.Color = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	fastLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(fastLine)
	p.Legend.Add("fast", fastLine)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
