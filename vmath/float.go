package vmath

import "math"

// Clamp limits v to [lo, hi]. NaN passes through unchanged
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampAbs limits the magnitude of v to limit, keeping its sign
func ClampAbs(v, limit float64) float64 {
	return Clamp(v, -limit, limit)
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
