package l5mode

// State is a capture mode, totally ordered by intervention priority: when
// several conditions hold at once the highest-priority one wins.
type State int

const (
	StateNormal State = iota
	StateLowLight
	StateWeakTexture
	StateHighMotion
	StateThermalThrottle
)

var stateNames = map[State]string{
	StateNormal:          "normal",
	StateLowLight:        "low_light",
	StateWeakTexture:     "weak_texture",
	StateHighMotion:      "high_motion",
	StateThermalThrottle: "thermal_throttle",
}

// String returns the string representation of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsValid returns true if the state is a known valid value.
func (s State) IsValid() bool {
	_, ok := stateNames[s]
	return ok
}

// ParseState converts a persisted state name back to a State.
func ParseState(name string) (State, bool) {
	for s, n := range stateNames {
		if n == name {
			return s, true
		}
	}
	return StateNormal, false
}

// Reason tags why a tick did or did not transition.
type Reason string

const (
	ReasonNone      Reason = "none"
	ReasonConfirmed Reason = "confirmed"
	ReasonEmergency Reason = "emergency"
)

// ThermalLevel is the device thermal pressure reported by the caller.
type ThermalLevel int

const (
	ThermalNominal ThermalLevel = iota
	ThermalFair
	ThermalSerious
	ThermalCritical
)

// IsValid reports whether the level is one of the four defined values.
func (t ThermalLevel) IsValid() bool {
	return t >= ThermalNominal && t <= ThermalCritical
}

// String returns the string representation of the thermal level.
func (t ThermalLevel) String() string {
	switch t {
	case ThermalNominal:
		return "nominal"
	case ThermalFair:
		return "fair"
	case ThermalSerious:
		return "serious"
	case ThermalCritical:
		return "critical"
	default:
		return "unknown"
	}
}
