package config

import (
	"github.com/aperture-field/capture.quality/internal/capture/l3gain"
	"github.com/aperture-field/capture.quality/internal/capture/l5mode"
)

// Built-in profiles. These are values, not pointers, so LoadProfile hands
// out an independent copy each time and callers cannot mutate the
// originals.

var productionGains = GainSpecs{
	Reproj:        l3gain.Spec{Threshold: 0.48, TransitionWidth: 0.30, Floor: 0, Favorable: l3gain.FavorableLow},
	Edge:          l3gain.Spec{Threshold: 0.23, TransitionWidth: 0.15, Floor: 0, Favorable: l3gain.FavorableLow},
	ThetaSpan:     l3gain.Spec{Threshold: 180, TransitionWidth: 120, Floor: 0.05, Favorable: l3gain.FavorableHigh},
	PhiSpan:       l3gain.Spec{Threshold: 30, TransitionWidth: 30, Floor: 0.05, Favorable: l3gain.FavorableHigh},
	L2Plus:        l3gain.Spec{Threshold: 60, TransitionWidth: 40, Floor: 0.10, Favorable: l3gain.FavorableHigh},
	L3:            l3gain.Spec{Threshold: 20, TransitionWidth: 20, Floor: 0.10, Favorable: l3gain.FavorableHigh},
	Sharpness:     l3gain.Spec{Threshold: 0.35, TransitionWidth: 0.20, Floor: 0.10, Favorable: l3gain.FavorableHigh},
	OverExposure:  l3gain.Spec{Threshold: 0.08, TransitionWidth: 0.06, Floor: 0.20, Favorable: l3gain.FavorableLow},
	UnderExposure: l3gain.Spec{Threshold: 0.12, TransitionWidth: 0.08, Floor: 0.20, Favorable: l3gain.FavorableLow},
}

var productionMode = ModeConfig{
	LowLight:               l5mode.Hysteresis{Entry: 40, Exit: 55},
	WeakTexture:            l5mode.Hysteresis{Entry: 60, Exit: 90},
	HighMotion:             l5mode.Hysteresis{Entry: 1.2, Exit: 0.8},
	ThermalEntry:           int(l5mode.ThermalSerious),
	ThermalExit:            int(l5mode.ThermalFair),
	ConfirmationFrames:     5,
	Cooldown:               "2s",
	EmergencyLuminanceJump: 120,
}

var productionProfile = Profile{
	Name:  ProfileProduction,
	Gains: productionGains,
	Mode:  productionMode,
}

// The debug profile scores identically to production but confirms mode
// transitions faster and runs the trig shadow check on every classified
// angle.
var debugProfile = Profile{
	Name:         ProfileDebug,
	ShadowVerify: true,
	Gains:        productionGains,
	Mode: ModeConfig{
		LowLight:               l5mode.Hysteresis{Entry: 40, Exit: 55},
		WeakTexture:            l5mode.Hysteresis{Entry: 60, Exit: 90},
		HighMotion:             l5mode.Hysteresis{Entry: 1.2, Exit: 0.8},
		ThermalEntry:           int(l5mode.ThermalSerious),
		ThermalExit:            int(l5mode.ThermalFair),
		ConfirmationFrames:     2,
		Cooldown:               "500ms",
		EmergencyLuminanceJump: 120,
	},
}

// The lab profile uses wider transitions and lower thresholds for bench
// rigs with controlled lighting, where production cliffs would mask the
// effect under study.
var labProfile = Profile{
	Name: ProfileLab,
	Gains: GainSpecs{
		Reproj:        l3gain.Spec{Threshold: 0.60, TransitionWidth: 0.50, Floor: 0.05, Favorable: l3gain.FavorableLow},
		Edge:          l3gain.Spec{Threshold: 0.30, TransitionWidth: 0.25, Floor: 0.05, Favorable: l3gain.FavorableLow},
		ThetaSpan:     l3gain.Spec{Threshold: 120, TransitionWidth: 150, Floor: 0.10, Favorable: l3gain.FavorableHigh},
		PhiSpan:       l3gain.Spec{Threshold: 20, TransitionWidth: 40, Floor: 0.10, Favorable: l3gain.FavorableHigh},
		L2Plus:        l3gain.Spec{Threshold: 40, TransitionWidth: 60, Floor: 0.15, Favorable: l3gain.FavorableHigh},
		L3:            l3gain.Spec{Threshold: 12, TransitionWidth: 30, Floor: 0.15, Favorable: l3gain.FavorableHigh},
		Sharpness:     l3gain.Spec{Threshold: 0.25, TransitionWidth: 0.30, Floor: 0.15, Favorable: l3gain.FavorableHigh},
		OverExposure:  l3gain.Spec{Threshold: 0.12, TransitionWidth: 0.10, Floor: 0.25, Favorable: l3gain.FavorableLow},
		UnderExposure: l3gain.Spec{Threshold: 0.18, TransitionWidth: 0.12, Floor: 0.25, Favorable: l3gain.FavorableLow},
	},
	Mode: ModeConfig{
		LowLight:               l5mode.Hysteresis{Entry: 25, Exit: 45},
		WeakTexture:            l5mode.Hysteresis{Entry: 40, Exit: 70},
		HighMotion:             l5mode.Hysteresis{Entry: 1.6, Exit: 1.1},
		ThermalEntry:           int(l5mode.ThermalCritical),
		ThermalExit:            int(l5mode.ThermalFair),
		ConfirmationFrames:     3,
		Cooldown:               "1s",
		EmergencyLuminanceJump: 160,
	},
}
