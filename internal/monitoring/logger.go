package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// debugEnabled gates Debugf output. Off by default; the debug profile and
// tests enable it via SetDebug.
var debugEnabled bool

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetDebug enables or disables debug-level output.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// DebugEnabled reports whether debug-level output is on.
func DebugEnabled() bool {
	return debugEnabled
}

// Debugf logs through the package logger only when debug output is enabled.
// Used by diagnostic hooks (e.g. the shadow trig verifier) that must stay
// silent on the production path.
func Debugf(format string, v ...interface{}) {
	if debugEnabled {
		Logf("debug: "+format, v...)
	}
}
