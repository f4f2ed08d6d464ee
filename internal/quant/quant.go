// Package quant provides fixed-precision quantization of bounded reals.
//
// Scores and gains travel across process and platform boundaries as
// fixed-scale integers rather than floats so that two machines agree on
// every persisted or compared value. Gains in [0,1] quantize at scale 1e12;
// angular degrees quantize at scale 1e9. Round-tripping a value through
// quantize/dequantize introduces at most one scale unit of error.
package quant

import "math"

// Scales for the two quantized domains.
const (
	// UnitScale is the integer scale for [0,1] gain and quality values.
	UnitScale = 1e12
	// DegreeScale is the integer scale for angular degree values.
	DegreeScale = 1e9
)

// QuantizeUnit converts a gain or quality value in [0,1] to a fixed-scale
// integer. Values outside [0,1] are clamped first; rounding is
// half-away-from-zero.
func QuantizeUnit(v float64) int64 {
	return quantize(clamp(v, 0, 1), UnitScale)
}

// DequantizeUnit converts a fixed-scale gain integer back to a float64.
func DequantizeUnit(q int64) float64 {
	return float64(q) / UnitScale
}

// QuantizeDegrees converts an angular value in degrees to a fixed-scale
// integer. Rounding is half-away-from-zero.
func QuantizeDegrees(deg float64) int64 {
	return quantize(deg, DegreeScale)
}

// DequantizeDegrees converts a fixed-scale degree integer back to a float64.
func DequantizeDegrees(q int64) float64 {
	return float64(q) / DegreeScale
}

// quantize rounds v*scale half-away-from-zero. math.Round implements exactly
// that rule, and is correctly rounded per IEEE 754, so results are identical
// across architectures.
func quantize(v, scale float64) int64 {
	return int64(math.Round(v * scale))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
