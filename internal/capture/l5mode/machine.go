package l5mode

import (
	"math"
	"time"
)

// Hysteresis is an entry/exit threshold pair for one trigger condition.
// While the condition's state is inactive, entering requires crossing the
// stricter Entry threshold; while active, remaining in it only requires
// staying past the looser Exit threshold.
type Hysteresis struct {
	Entry float64 `json:"entry"`
	Exit  float64 `json:"exit"`
}

// Config parameterises the state machine. Loaded once from a named profile
// and immutable for the process lifetime.
type Config struct {
	// LowLight triggers when luminance drops below Entry; active until
	// luminance rises above Exit (Exit > Entry).
	LowLight Hysteresis
	// WeakTexture triggers when the feature-tracking count drops below
	// Entry; active until it rises above Exit (Exit > Entry).
	WeakTexture Hysteresis
	// HighMotion triggers when angular velocity exceeds Entry; active while
	// it stays above Exit (Exit < Entry).
	HighMotion Hysteresis
	// ThermalEntry/ThermalExit bound the thermal throttle condition: it
	// triggers at or above ThermalEntry and stays active at or above
	// ThermalExit (ThermalExit <= ThermalEntry).
	ThermalEntry ThermalLevel
	ThermalExit  ThermalLevel

	// ConfirmationFrames is how many consecutive ticks a candidate state
	// must persist before an ordinary transition fires.
	ConfirmationFrames int
	// Cooldown is the mandatory window after any transition during which
	// ordinary transitions are suppressed.
	Cooldown time.Duration
	// EmergencyLuminanceJump is the absolute inter-frame luminance change
	// that counts as an emergency; zero disables the check.
	EmergencyLuminanceJump float64
}

// Signals are the raw per-tick inputs the machine consumes, pre-validated
// by the caller.
type Signals struct {
	Luminance       float64
	FeatureCount    int
	AngularVelocity float64
	Thermal         ThermalLevel
	UnixNanos       int64
}

// Result reports the outcome of one tick.
type Result struct {
	State        State
	Transitioned bool
	Reason       Reason
}

// Machine is the capture-mode state machine. It owns the capture state
// exclusively for a session; it is not safe for concurrent use. The
// engine ticks it once per frame on the evaluation goroutine.
type Machine struct {
	cfg Config

	state               State
	lastTransitionNanos int64

	candidate       State
	candidateStreak int

	prevLuminance float64
	havePrev      bool
}

// NewMachine creates a machine in StateNormal.
func NewMachine(cfg Config) *Machine {
	if cfg.ConfirmationFrames < 1 {
		cfg.ConfirmationFrames = 1
	}
	return &Machine{cfg: cfg, state: StateNormal, candidate: StateNormal}
}

// State returns the current capture state.
func (m *Machine) State() State {
	return m.state
}

// LastTransitionNanos returns the timestamp of the last transition, or 0 if
// none has occurred.
func (m *Machine) LastTransitionNanos() int64 {
	return m.lastTransitionNanos
}

// Restore re-seats the machine on persisted session state.
func (m *Machine) Restore(state State, lastTransitionNanos int64) {
	if !state.IsValid() {
		state = StateNormal
	}
	m.state = state
	m.lastTransitionNanos = lastTransitionNanos
	m.candidate = state
	m.candidateStreak = 0
	m.havePrev = false
}

// Tick consumes one frame of signals and returns the (possibly new) state
// with transition metadata.
func (m *Machine) Tick(sig Signals) Result {
	emergency := m.isEmergency(sig)
	candidate := m.candidateFor(sig)

	if candidate == m.candidate {
		m.candidateStreak++
	} else {
		m.candidate = candidate
		m.candidateStreak = 1
	}

	m.prevLuminance = sig.Luminance
	m.havePrev = true

	if candidate == m.state {
		return Result{State: m.state, Reason: ReasonNone}
	}

	if emergency {
		m.transition(candidate, sig.UnixNanos)
		return Result{State: m.state, Transitioned: true, Reason: ReasonEmergency}
	}

	// No cooldown applies before the first transition of a session.
	cooled := m.lastTransitionNanos == 0 ||
		sig.UnixNanos-m.lastTransitionNanos >= int64(m.cfg.Cooldown)
	if m.candidateStreak >= m.cfg.ConfirmationFrames && cooled {
		m.transition(candidate, sig.UnixNanos)
		return Result{State: m.state, Transitioned: true, Reason: ReasonConfirmed}
	}

	return Result{State: m.state, Reason: ReasonNone}
}

func (m *Machine) transition(to State, nowNanos int64) {
	m.state = to
	m.lastTransitionNanos = nowNanos
	m.candidateStreak = 0
}

// isEmergency detects conditions that bypass confirmation and cooldown:
// thermal critical, or an abrupt inter-frame luminance jump.
func (m *Machine) isEmergency(sig Signals) bool {
	if sig.Thermal >= ThermalCritical {
		return true
	}
	if m.cfg.EmergencyLuminanceJump > 0 && m.havePrev {
		if math.Abs(sig.Luminance-m.prevLuminance) >= m.cfg.EmergencyLuminanceJump {
			return true
		}
	}
	return false
}

// candidateFor returns the highest-priority condition currently satisfied,
// judging each by its entry or exit threshold depending on whether its
// state is the active one. Simultaneous new entries resolve by strict
// priority ordering.
func (m *Machine) candidateFor(sig Signals) State {
	if m.thermalSatisfied(sig.Thermal) {
		return StateThermalThrottle
	}
	if m.aboveSatisfied(StateHighMotion, sig.AngularVelocity, m.cfg.HighMotion) {
		return StateHighMotion
	}
	if m.belowSatisfied(StateWeakTexture, float64(sig.FeatureCount), m.cfg.WeakTexture) {
		return StateWeakTexture
	}
	if m.belowSatisfied(StateLowLight, sig.Luminance, m.cfg.LowLight) {
		return StateLowLight
	}
	return StateNormal
}

func (m *Machine) thermalSatisfied(level ThermalLevel) bool {
	if m.state == StateThermalThrottle {
		return level >= m.cfg.ThermalExit
	}
	return level >= m.cfg.ThermalEntry
}

// aboveSatisfied handles conditions triggered by a metric rising (entry
// above Entry, active while above Exit).
func (m *Machine) aboveSatisfied(s State, value float64, h Hysteresis) bool {
	if m.state == s {
		return value > h.Exit
	}
	return value > h.Entry
}

// belowSatisfied handles conditions triggered by a metric falling (entry
// below Entry, active while below Exit).
func (m *Machine) belowSatisfied(s State, value float64, h Hysteresis) bool {
	if m.state == s {
		return value < h.Exit
	}
	return value < h.Entry
}
