package monitor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aperture-field/capture.quality/internal/capture/l3gain"
)

func testCurveRequest() CurveRequest {
	return CurveRequest{
		Title:   "Reprojection RMS",
		Spec:    l3gain.Spec{Threshold: 0.48, TransitionWidth: 0.3, Favorable: l3gain.FavorableLow},
		MinX:    0,
		MaxX:    1.5,
		Samples: 100,
	}
}

func TestRenderGainCurvesHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderGainCurvesHTML(&buf, testCurveRequest()); err != nil {
		t.Fatalf("RenderGainCurvesHTML: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "canonical") || !strings.Contains(out, "fast") {
		t.Error("rendered chart missing backend series names")
	}
	if !strings.Contains(out, "Reprojection RMS") {
		t.Error("rendered chart missing title")
	}
}

func TestRenderRejectsInvalidRequests(t *testing.T) {
	r := testCurveRequest()
	r.Samples = 1
	if err := RenderGainCurvesHTML(&bytes.Buffer{}, r); err == nil {
		t.Error("expected error for too few samples")
	}

	r = testCurveRequest()
	r.MaxX = r.MinX
	if err := RenderGainCurvesHTML(&bytes.Buffer{}, r); err == nil {
		t.Error("expected error for empty x range")
	}

	r = testCurveRequest()
	r.Spec.TransitionWidth = 0
	if err := RenderGainCurvesHTML(&bytes.Buffer{}, r); err == nil {
		t.Error("expected error for invalid spec")
	}
}

func TestPlotGainCurvePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")
	if err := PlotGainCurvePNG(path, testCurveRequest()); err != nil {
		t.Fatalf("PlotGainCurvePNG: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat plot: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}
