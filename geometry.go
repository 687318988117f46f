package turtle

import "math"

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(r float64) float64 {
	return r * 180 / math.Pi
}

// SinCos returns the sine and cosine of angle (radians) with a single call.
func SinCos(angle float64) (sin, cos float64) {
	return math.Sincos(angle)
}

// Bounds is the axis-aligned extent of a canvas in turtle coordinates.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoundsFor returns the bounds of a width x height canvas whose origin is
// at its centre.
func BoundsFor(width, height int) Bounds {
	hw := float64(width) / 2
	hh := float64(height) / 2
	return Bounds{MinX: -hw, MaxX: hw, MinY: -hh, MaxY: hh}
}

