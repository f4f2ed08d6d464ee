package l5mode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		LowLight:               Hysteresis{Entry: 40, Exit: 55},
		WeakTexture:            Hysteresis{Entry: 60, Exit: 90},
		HighMotion:             Hysteresis{Entry: 1.2, Exit: 0.8},
		ThermalEntry:           ThermalSerious,
		ThermalExit:            ThermalFair,
		ConfirmationFrames:     3,
		Cooldown:               2 * time.Second,
		EmergencyLuminanceJump: 120,
	}
}

// calm returns signals that satisfy no condition.
func calm(nanos int64) Signals {
	return Signals{
		Luminance:       100,
		FeatureCount:    200,
		AngularVelocity: 0.1,
		Thermal:         ThermalNominal,
		UnixNanos:       nanos,
	}
}

func TestMachineStartsNormal(t *testing.T) {
	m := NewMachine(testConfig())
	assert.Equal(t, StateNormal, m.State())

	res := m.Tick(calm(1))
	assert.Equal(t, StateNormal, res.State)
	assert.False(t, res.Transitioned)
	assert.Equal(t, ReasonNone, res.Reason)
}

func TestConfirmationFramesGateTransition(t *testing.T) {
	m := NewMachine(testConfig())
	tick := func(i int) Result {
		sig := calm(int64(i) * int64(100*time.Millisecond))
		sig.Luminance = 30 // below low-light entry
		return m.Tick(sig)
	}

	// Two candidate ticks are not enough for ConfirmationFrames=3.
	res := tick(1)
	assert.False(t, res.Transitioned)
	res = tick(2)
	assert.False(t, res.Transitioned)

	// Third consecutive candidate tick confirms.
	res = tick(3)
	require.True(t, res.Transitioned)
	assert.Equal(t, StateLowLight, res.State)
	assert.Equal(t, ReasonConfirmed, res.Reason)
}

func TestCandidateChangeResetsStreak(t *testing.T) {
	m := NewMachine(testConfig())
	base := int64(100 * time.Millisecond)

	dark := calm(base)
	dark.Luminance = 30
	m.Tick(dark)
	dark.UnixNanos = 2 * base
	m.Tick(dark)

	// A calm tick resets the low-light streak.
	m.Tick(calm(3 * base))

	dark.UnixNanos = 4 * base
	res := m.Tick(dark)
	assert.False(t, res.Transitioned, "streak must restart after candidate change")
}

func TestHysteresisPreventsFlapping(t *testing.T) {
	cfg := testConfig()
	cfg.ConfirmationFrames = 1
	m := NewMachine(cfg)

	// Oscillate luminance between just under the entry threshold and just
	// under the exit threshold. Once active, values below Exit keep the
	// state active, so only the initial entry transitions.
	transitions := 0
	for i := 1; i <= 20; i++ {
		sig := calm(int64(i) * int64(100*time.Millisecond))
		if i%2 == 1 {
			sig.Luminance = 39 // below entry
		} else {
			sig.Luminance = 54 // above entry, below exit: stays active
		}
		if m.Tick(sig).Transitioned {
			transitions++
		}
	}
	assert.Equal(t, 1, transitions)
	assert.Equal(t, StateLowLight, m.State())
}

func TestOscillationAcrossBothThresholdsBoundedByCooldown(t *testing.T) {
	cfg := testConfig()
	cfg.ConfirmationFrames = 1
	m := NewMachine(cfg)

	// Oscillate across both thresholds every tick. Each direction change is
	// a candidate change; the cooldown bounds flapping to one transition
	// per window.
	window := int64(cfg.Cooldown)
	transitionsInWindow := make(map[int64]int)
	for i := 1; i <= 100; i++ {
		sig := calm(int64(i) * int64(100*time.Millisecond))
		if i%2 == 1 {
			sig.Luminance = 30 // well below entry
		} else {
			sig.Luminance = 70 // well above exit
		}
		res := m.Tick(sig)
		if res.Transitioned {
			transitionsInWindow[sig.UnixNanos/window]++
		}
	}
	for w, n := range transitionsInWindow {
		assert.LessOrEqual(t, n, 1, "window %d flapped %d times", w, n)
	}
}

func TestThermalCriticalTransitionsSameTick(t *testing.T) {
	cfg := testConfig()
	m := NewMachine(cfg)

	// Put the machine mid-cooldown by confirming a low-light transition.
	for i := 1; i <= 3; i++ {
		sig := calm(int64(i) * int64(100*time.Millisecond))
		sig.Luminance = 30
		m.Tick(sig)
	}
	require.Equal(t, StateLowLight, m.State())

	// Thermal critical must fire immediately, bypassing confirmation and
	// the cooldown that is still running.
	sig := calm(int64(400 * time.Millisecond))
	sig.Thermal = ThermalCritical
	res := m.Tick(sig)
	require.True(t, res.Transitioned)
	assert.Equal(t, StateThermalThrottle, res.State)
	assert.Equal(t, ReasonEmergency, res.Reason)
}

func TestThermalHysteresis(t *testing.T) {
	cfg := testConfig()
	cfg.ConfirmationFrames = 1
	cfg.Cooldown = 0
	m := NewMachine(cfg)

	sig := calm(1)
	sig.Thermal = ThermalSerious
	res := m.Tick(sig)
	require.Equal(t, StateThermalThrottle, res.State)

	// Dropping to Fair stays at or above the exit level: still throttled.
	sig = calm(2)
	sig.Thermal = ThermalFair
	res = m.Tick(sig)
	assert.Equal(t, StateThermalThrottle, res.State)
	assert.False(t, res.Transitioned)

	// Nominal is below the exit level: recover.
	sig = calm(3)
	sig.Thermal = ThermalNominal
	res = m.Tick(sig)
	assert.Equal(t, StateNormal, res.State)
	assert.True(t, res.Transitioned)
}

func TestLuminanceJumpIsEmergency(t *testing.T) {
	cfg := testConfig()
	m := NewMachine(cfg)

	m.Tick(calm(1)) // establishes the previous luminance (100)

	sig := calm(2)
	sig.Luminance = 300 // jump of 200 >= 120
	// A luminance this high satisfies nothing by itself; the jump forces
	// the candidate (normal) which equals the current state, so no
	// transition happens. Now drop into darkness abruptly instead.
	m.Tick(sig)

	sig = calm(3)
	sig.Luminance = 20 // jump of 280, and below low-light entry
	res := m.Tick(sig)
	require.True(t, res.Transitioned)
	assert.Equal(t, StateLowLight, res.State)
	assert.Equal(t, ReasonEmergency, res.Reason)
}

func TestStrictPriorityOnSimultaneousEntry(t *testing.T) {
	cfg := testConfig()
	cfg.ConfirmationFrames = 1
	m := NewMachine(cfg)

	// Low light and weak texture cross their entry thresholds on the same
	// tick; the higher-priority weak texture wins.
	sig := calm(1)
	sig.Luminance = 30
	sig.FeatureCount = 10
	res := m.Tick(sig)
	require.True(t, res.Transitioned)
	assert.Equal(t, StateWeakTexture, res.State)
}

func TestHighMotionHysteresis(t *testing.T) {
	cfg := testConfig()
	cfg.ConfirmationFrames = 1
	cfg.Cooldown = 0
	m := NewMachine(cfg)

	sig := calm(1)
	sig.AngularVelocity = 1.5
	res := m.Tick(sig)
	require.Equal(t, StateHighMotion, res.State)

	// Between exit (0.8) and entry (1.2): stays active.
	sig = calm(2)
	sig.AngularVelocity = 1.0
	res = m.Tick(sig)
	assert.Equal(t, StateHighMotion, res.State)

	// Below exit: recovers.
	sig = calm(3)
	sig.AngularVelocity = 0.5
	res = m.Tick(sig)
	assert.Equal(t, StateNormal, res.State)
}

func TestRestore(t *testing.T) {
	m := NewMachine(testConfig())
	m.Restore(StateHighMotion, 12345)
	assert.Equal(t, StateHighMotion, m.State())
	assert.Equal(t, int64(12345), m.LastTransitionNanos())

	// Invalid persisted state falls back to normal.
	m.Restore(State(99), 0)
	assert.Equal(t, StateNormal, m.State())
}

func TestStateStringAndParse(t *testing.T) {
	for _, s := range []State{StateNormal, StateLowLight, StateWeakTexture, StateHighMotion, StateThermalThrottle} {
		parsed, ok := ParseState(s.String())
		require.True(t, ok, "ParseState(%q)", s.String())
		assert.Equal(t, s, parsed)
	}
	_, ok := ParseState("bogus")
	assert.False(t, ok)
}
