// Package l5mode owns Layer 5 (Capture Mode) of the capture quality model.
//
// Responsibilities: the hysteresis-controlled capture-mode state machine.
// Each trigger condition carries separate entry and exit thresholds so a
// metric hovering near one value cannot flap the mode; ordinary transitions
// additionally require a confirmation streak and a cooldown window, while
// emergency conditions (thermal critical, abrupt luminance jump) transition
// within the same tick.
//
// Dependency rule: L5 may depend on L1-L4 and the shared leaf packages.
// The machine owns the capture state exclusively; callers persist it only
// through the snapshot contract.
package l5mode
