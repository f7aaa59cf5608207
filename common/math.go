package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lerp interpolates between a and b. It is written as a*(1-t) + b*t so that
// t == 0 returns a and t == 1 returns b exactly.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func Clamp(v, lo, hi float64) float64 {
	return mgl64.Clamp(v, lo, hi)
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
