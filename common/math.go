package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SlopeAngle returns the angle in degrees between a surface normal and
// world up. A zero normal reads as flat ground.
func SlopeAngle(normal mgl64.Vec3) float64 {
	if normal == (mgl64.Vec3{}) {
		return 0
	}
	cos := Clamp(normal.Normalize().Y(), -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}
