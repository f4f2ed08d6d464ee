// Package config defines the closed set of named capture-quality profiles
// and their fail-fast validation.
//
// A profile supplies every per-metric gain spec and every hysteresis
// entry/exit pair. Profiles are loaded exactly once at process start and
// are immutable afterwards; a malformed profile would silently corrupt
// every subsequent score, so any validation problem is a hard startup
// error, before the first frame is processed.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aperture-field/capture.quality/internal/capture/l3gain"
	"github.com/aperture-field/capture.quality/internal/capture/l5mode"
)

// Profile names form a closed set; unrecognized names are a load error.
const (
	ProfileProduction = "production"
	ProfileDebug      = "debug"
	ProfileLab        = "lab"
)

// GainSpecs holds the per-metric gain parameterisation. The JSON schema is
// closed: unknown keys are rejected at load time.
type GainSpecs struct {
	Reproj        l3gain.Spec `json:"reproj"`
	Edge          l3gain.Spec `json:"edge"`
	ThetaSpan     l3gain.Spec `json:"theta_span"`
	PhiSpan       l3gain.Spec `json:"phi_span"`
	L2Plus        l3gain.Spec `json:"l2_plus"`
	L3            l3gain.Spec `json:"l3"`
	Sharpness     l3gain.Spec `json:"sharpness"`
	OverExposure  l3gain.Spec `json:"over_exposure"`
	UnderExposure l3gain.Spec `json:"under_exposure"`
}

// ModeConfig holds the state machine parameterisation. Thermal levels are
// numeric (0=nominal .. 3=critical); Cooldown is a duration string like
// "2s" so profiles stay readable.
type ModeConfig struct {
	LowLight               l5mode.Hysteresis `json:"low_light"`
	WeakTexture            l5mode.Hysteresis `json:"weak_texture"`
	HighMotion             l5mode.Hysteresis `json:"high_motion"`
	ThermalEntry           int               `json:"thermal_entry"`
	ThermalExit            int               `json:"thermal_exit"`
	ConfirmationFrames     int               `json:"confirmation_frames"`
	Cooldown               string            `json:"cooldown"`
	EmergencyLuminanceJump float64           `json:"emergency_luminance_jump"`
}

// Profile is one named, validated configuration.
type Profile struct {
	Name string `json:"name"`
	// ShadowVerify enables the debug-only trig cross-check of the zero-trig
	// classifier. Only the debug profile turns this on.
	ShadowVerify bool       `json:"shadow_verify"`
	Gains        GainSpecs  `json:"gains"`
	Mode         ModeConfig `json:"mode"`
}

// LoadProfile returns a validated copy of a built-in profile. Unknown
// profile names are a hard error; there is no open-ended fallback.
func LoadProfile(name string) (*Profile, error) {
	var p Profile
	switch name {
	case ProfileProduction:
		p = productionProfile
	case ProfileDebug:
		p = debugProfile
	case ProfileLab:
		p = labProfile
	default:
		return nil, fmt.Errorf("unknown profile %q (valid: %s, %s, %s)",
			name, ProfileProduction, ProfileDebug, ProfileLab)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}
	return &p, nil
}

// LoadProfileFile loads a profile from a JSON file. The decoder rejects
// unknown keys, so a typo in a profile file fails at startup instead of
// silently using a default.
func LoadProfileFile(path string) (*Profile, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("profile file must have .json extension, got %q", ext)
	}

	f, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %q: %w", p.Name, err)
	}
	return &p, nil
}

// Validate checks every load-time invariant of the profile.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name must not be empty")
	}

	gains := []struct {
		name string
		spec l3gain.Spec
	}{
		{"reproj", p.Gains.Reproj},
		{"edge", p.Gains.Edge},
		{"theta_span", p.Gains.ThetaSpan},
		{"phi_span", p.Gains.PhiSpan},
		{"l2_plus", p.Gains.L2Plus},
		{"l3", p.Gains.L3},
		{"sharpness", p.Gains.Sharpness},
		{"over_exposure", p.Gains.OverExposure},
		{"under_exposure", p.Gains.UnderExposure},
	}
	for _, g := range gains {
		if err := g.spec.Validate(); err != nil {
			return fmt.Errorf("gain %s: %w", g.name, err)
		}
	}

	m := p.Mode
	if m.LowLight.Exit <= m.LowLight.Entry {
		return fmt.Errorf("low_light exit %v must be above entry %v", m.LowLight.Exit, m.LowLight.Entry)
	}
	if m.WeakTexture.Exit <= m.WeakTexture.Entry {
		return fmt.Errorf("weak_texture exit %v must be above entry %v", m.WeakTexture.Exit, m.WeakTexture.Entry)
	}
	if m.HighMotion.Exit >= m.HighMotion.Entry {
		return fmt.Errorf("high_motion exit %v must be below entry %v", m.HighMotion.Exit, m.HighMotion.Entry)
	}
	if m.ThermalEntry < int(l5mode.ThermalNominal) || m.ThermalEntry > int(l5mode.ThermalCritical) {
		return fmt.Errorf("thermal_entry %d out of range", m.ThermalEntry)
	}
	if m.ThermalExit < int(l5mode.ThermalNominal) || m.ThermalExit > m.ThermalEntry {
		return fmt.Errorf("thermal_exit %d must be in [0, thermal_entry]", m.ThermalExit)
	}
	if m.ConfirmationFrames < 1 {
		return fmt.Errorf("confirmation_frames must be at least 1, got %d", m.ConfirmationFrames)
	}
	if _, err := time.ParseDuration(m.Cooldown); err != nil {
		return fmt.Errorf("invalid cooldown %q: %w", m.Cooldown, err)
	}
	if m.EmergencyLuminanceJump < 0 {
		return fmt.Errorf("emergency_luminance_jump must be non-negative, got %v", m.EmergencyLuminanceJump)
	}
	return nil
}

// ModeMachineConfig converts the validated mode section into the state
// machine's config. Call only after Validate has passed.
func (p *Profile) ModeMachineConfig() l5mode.Config {
	cooldown, _ := time.ParseDuration(p.Mode.Cooldown)
	return l5mode.Config{
		LowLight:               p.Mode.LowLight,
		WeakTexture:            p.Mode.WeakTexture,
		HighMotion:             p.Mode.HighMotion,
		ThermalEntry:           l5mode.ThermalLevel(p.Mode.ThermalEntry),
		ThermalExit:            l5mode.ThermalLevel(p.Mode.ThermalExit),
		ConfirmationFrames:     p.Mode.ConfirmationFrames,
		Cooldown:               cooldown,
		EmergencyLuminanceJump: p.Mode.EmergencyLuminanceJump,
	}
}
