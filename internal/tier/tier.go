// Package tier defines the determinism tier context: an immutable selector
// of the numeric backend used for gain evaluation.
//
// The tier is chosen exactly once by the application layer (CLI, test
// harness) and threaded through every tier-dependent call as an explicit
// parameter. The core never inspects hardware capability to pick a backend;
// doing so would route identical inputs through different floating-point
// paths on different devices and break cross-device reproducibility.
package tier

import "fmt"

// Backend identifies a numeric backend for gain evaluation.
type Backend string

const (
	// Canonical is the direct double-precision evaluation path. It is the
	// reference backend: golden fixtures and correctness tests use it
	// exclusively.
	Canonical Backend = "canonical"

	// Fast evaluates through a monotonic lookup table built once from
	// canonical values. Validated against Canonical only by error bound and
	// monotonicity, never exact equality.
	Fast Backend = "fast"

	// FixedPointPlaceholder reserves a slot for an integer-only backend.
	// Until that backend lands it evaluates via the canonical path.
	FixedPointPlaceholder Backend = "fixed_point_placeholder"
)

// IsValid returns true if the backend is a known valid value.
func (b Backend) IsValid() bool {
	switch b {
	case Canonical, Fast, FixedPointPlaceholder:
		return true
	default:
		return false
	}
}

// String returns the string representation of the backend.
func (b Backend) String() string {
	return string(b)
}

// Context is an immutable tier selection. Construct with New and pass by
// value; the zero Context is invalid.
type Context struct {
	backend Backend
}

// New creates a Context for the given backend. Unknown backends are a hard
// construction error so a typo in a flag cannot silently select a default.
func New(b Backend) (Context, error) {
	if !b.IsValid() {
		return Context{}, fmt.Errorf("unknown determinism tier %q", b)
	}
	return Context{backend: b}, nil
}

// MustNew creates a Context or panics. Intended for tests and built-in
// defaults where the backend is a compile-time constant.
func MustNew(b Backend) Context {
	ctx, err := New(b)
	if err != nil {
		panic(err)
	}
	return ctx
}

// Backend returns the selected backend.
func (c Context) Backend() Backend {
	return c.backend
}

// IsValid reports whether the context was constructed through New.
func (c Context) IsValid() bool {
	return c.backend.IsValid()
}
