// Package capture wires the five scoring layers into a per-frame
// evaluation engine.
//
// The engine runs synchronously, once per captured frame, on a single
// evaluation goroutine. Classification and gain evaluation are pure; the
// only long-lived mutable state is the per-patch coverage tracker and the
// capture-mode state machine, both owned by the engine for the lifetime
// of a session.
//
// Layer packages (l1angles through l5mode) depend only on lower layers.
// This package sits on top of all of them and is the only place the full
// pipeline is assembled.
package capture
