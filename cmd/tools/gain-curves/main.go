// gain-curves renders a profile's gain response curves for visual
// inspection, comparing the canonical and fast backends. Output is an
// interactive HTML report, or a static PNG when the output path ends in
// .png.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aperture-field/capture.quality/internal/capture/l3gain"
	"github.com/aperture-field/capture.quality/internal/capture/monitor"
	"github.com/aperture-field/capture.quality/internal/config"
)

func main() {
	profileName := flag.String("profile", config.ProfileProduction, "Built-in profile name")
	metric := flag.String("metric", "reproj", "Gain to plot (reproj, edge, theta_span, phi_span, l2_plus, l3, sharpness, over_exposure, under_exposure)")
	out := flag.String("out", "gain-curves.html", "Output file (.html or .png)")
	minX := flag.Float64("min", 0, "Minimum metric value")
	maxX := flag.Float64("max", 0, "Maximum metric value (default: threshold + 2 widths)")
	samples := flag.Int("samples", 400, "Number of samples across the range")
	flag.Parse()

	profile, err := config.LoadProfile(*profileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gain-curves: %v\n", err)
		os.Exit(1)
	}

	spec, ok := specByName(profile, *metric)
	if !ok {
		fmt.Fprintf(os.Stderr, "gain-curves: unknown metric %q\n", *metric)
		os.Exit(1)
	}

	max := *maxX
	if max <= *minX {
		max = spec.Threshold + 2*spec.TransitionWidth
	}

	req := monitor.CurveRequest{
		Title:   fmt.Sprintf("%s gain (%s profile)", *metric, profile.Name),
		Spec:    spec,
		MinX:    *minX,
		MaxX:    max,
		Samples: *samples,
	}

	if strings.EqualFold(filepath.Ext(*out), ".png") {
		if err := monitor.PlotGainCurvePNG(*out, req); err != nil {
			fmt.Fprintf(os.Stderr, "gain-curves: %v\n", err)
			os.Exit(1)
		}
	} else {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gain-curves: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := monitor.RenderGainCurvesHTML(f, req); err != nil {
			fmt.Fprintf(os.Stderr, "gain-curves: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("wrote %s\n", *out)
}

func specByName(p *config.Profile, name string) (l3gain.Spec, bool) {
	switch name {
	case "reproj":
		return p.Gains.Reproj, true
	case "edge":
		return p.Gains.Edge, true
	case "theta_span":
		return p.Gains.ThetaSpan, true
	case "phi_span":
		return p.Gains.PhiSpan, true
	case "l2_plus":
		return p.Gains.L2Plus, true
	case "l3":
		return p.Gains.L3, true
	case "sharpness":
		return p.Gains.Sharpness, true
	case "over_exposure":
		return p.Gains.OverExposure, true
	case "under_exposure":
		return p.Gains.UnderExposure, true
	}
	return l3gain.Spec{}, false
}
