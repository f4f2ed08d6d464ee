package capture

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/aperture-field/capture.quality/internal/capture/l1angles"
	"github.com/aperture-field/capture.quality/internal/capture/l2coverage"
	"github.com/aperture-field/capture.quality/internal/capture/l3gain"
	"github.com/aperture-field/capture.quality/internal/capture/l4score"
	"github.com/aperture-field/capture.quality/internal/capture/l5mode"
	"github.com/aperture-field/capture.quality/internal/config"
	"github.com/aperture-field/capture.quality/internal/monitoring"
	"github.com/aperture-field/capture.quality/internal/tier"
)

// FrameMetrics are the pre-validated per-frame inputs. Direction
// components come from the caller's pose estimator and are assumed
// normalized; everything else is a raw scalar metric in its natural unit.
type FrameMetrics struct {
	PatchID string `json:"patch_id"`

	DirX float64 `json:"dir_x"`
	DirY float64 `json:"dir_y"`
	DirZ float64 `json:"dir_z"`

	ReprojRMS float64 `json:"reproj_rms"`
	EdgeRMS   float64 `json:"edge_rms"`

	L2PlusCount int `json:"l2_plus_count"`
	L3Count     int `json:"l3_count"`

	Sharpness          float64 `json:"sharpness"`
	OverExposureRatio  float64 `json:"over_exposure_ratio"`
	UnderExposureRatio float64 `json:"under_exposure_ratio"`

	Luminance       float64             `json:"luminance"`
	AngularVelocity float64             `json:"angular_velocity"`
	Thermal         l5mode.ThermalLevel `json:"thermal"`

	UnixNanos int64 `json:"unix_nanos"`
}

// FrameResult is everything one evaluation produces: the classified
// buckets, the patch's accumulated spans, every sub-gain, the composed
// scores, and the state machine outcome for this tick.
type FrameResult struct {
	ThetaBucket int
	PhiBucket   int
	Spans       l2coverage.Spans
	Gains       l4score.Gains
	Scores      l4score.SubScores
	Mode        l5mode.Result
}

// Engine evaluates frames for one capture session.
type Engine struct {
	sessionID string
	profile   *config.Profile
	tierCtx   tier.Context
	tracker   *l2coverage.PatchTracker
	machine   *l5mode.Machine
	shadow    l1angles.ShadowVerifier
}

// NewEngine builds an engine from a validated profile and an explicit
// numeric tier. The tier is injected here once and flows read-only
// through every gain evaluation; nothing below this constructor selects
// a backend on its own.
func NewEngine(profile *config.Profile, tc tier.Context) (*Engine, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile must not be nil")
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	if !tc.IsValid() {
		return nil, fmt.Errorf("invalid tier context")
	}

	e := &Engine{
		sessionID: uuid.New().String(),
		profile:   profile,
		tierCtx:   tc,
		tracker:   l2coverage.NewPatchTracker(),
		machine:   l5mode.NewMachine(profile.ModeMachineConfig()),
	}
	if profile.ShadowVerify {
		e.shadow = logShadowMismatch
	}
	return e, nil
}

// SessionID returns the engine's session identity.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// State returns the current capture-mode state.
func (e *Engine) State() l5mode.State {
	return e.machine.State()
}

// Tracker exposes the patch tracker for bulk recompute and persistence.
func (e *Engine) Tracker() *l2coverage.PatchTracker {
	return e.tracker
}

// EvaluateFrame runs the full pipeline for one frame: classify the
// direction, fold it into the patch's coverage, evaluate every gain under
// the injected tier, compose the composite score, and tick the state
// machine. Out-of-range metric values are clamped inside the gain layer
// rather than rejected; the only error paths here are structural.
func (e *Engine) EvaluateFrame(m FrameMetrics) (FrameResult, error) {
	if m.PatchID == "" {
		return FrameResult{}, fmt.Errorf("frame metrics missing patch ID")
	}
	if !m.Thermal.IsValid() {
		return FrameResult{}, fmt.Errorf("invalid thermal level %d", m.Thermal)
	}

	theta := l1angles.ShadowCheckTheta(m.DirX, m.DirZ, e.shadow)
	phi := l1angles.ClassifyPhi(m.DirY)

	e.tracker.Observe(m.PatchID, theta, phi)
	spans := e.tracker.Spans(m.PatchID)

	g := e.evaluateGains(m, spans)
	scores := l4score.Compose(g)

	mode := e.machine.Tick(l5mode.Signals{
		Luminance:       m.Luminance,
		FeatureCount:    m.L2PlusCount + m.L3Count,
		AngularVelocity: m.AngularVelocity,
		Thermal:         m.Thermal,
		UnixNanos:       m.UnixNanos,
	})
	if mode.Transitioned {
		monitoring.Logf("capture: session %s mode %s (%s)", e.sessionID, mode.State, mode.Reason)
	}

	return FrameResult{
		ThetaBucket: theta,
		PhiBucket:   phi,
		Spans:       spans,
		Gains:       g,
		Scores:      scores,
		Mode:        mode,
	}, nil
}

func (e *Engine) evaluateGains(m FrameMetrics, spans l2coverage.Spans) l4score.Gains {
	gs := e.profile.Gains
	tc := e.tierCtx
	return l4score.Gains{
		Reproj:        l3gain.Gain(tc, gs.Reproj, m.ReprojRMS),
		Edge:          l3gain.Gain(tc, gs.Edge, m.EdgeRMS),
		ThetaSpan:     l3gain.Gain(tc, gs.ThetaSpan, spans.ThetaDegrees),
		PhiSpan:       l3gain.Gain(tc, gs.PhiSpan, spans.PhiDegrees),
		L2Plus:        l3gain.CountGain(tc, gs.L2Plus, m.L2PlusCount),
		L3:            l3gain.CountGain(tc, gs.L3, m.L3Count),
		Sharpness:     l3gain.Gain(tc, gs.Sharpness, m.Sharpness),
		OverExposure:  l3gain.Gain(tc, gs.OverExposure, m.OverExposureRatio),
		UnderExposure: l3gain.Gain(tc, gs.UnderExposure, m.UnderExposureRatio),
	}
}

// EvaluateGate recomputes every patch against a coverage gate using a
// bounded worker pool. See l2coverage.PatchTracker.EvaluateGate.
func (e *Engine) EvaluateGate(gate l2coverage.GateSpec, workers int) l2coverage.GateResult {
	return e.tracker.EvaluateGate(gate, workers)
}

// ResetSession clears all per-session state and assigns a fresh session
// identity. The profile and tier are process-lifetime and survive.
func (e *Engine) ResetSession() {
	e.sessionID = uuid.New().String()
	e.tracker.Reset()
	e.machine = l5mode.NewMachine(e.profile.ModeMachineConfig())
}

func logShadowMismatch(dx, dz float64, zeroTrig, trigRef int) {
	if zeroTrig != trigRef {
		monitoring.Debugf("capture: shadow theta mismatch dx=%.9f dz=%.9f zerotrig=%d ref=%d",
			dx, dz, zeroTrig, trigRef)
	}
}
