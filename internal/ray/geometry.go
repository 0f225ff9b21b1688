package ray

import "math"

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// PointOnCircle places a point at angleDeg degrees on the circle of the given
// radius around (cx, cy). 0 degrees points along +X and angles grow toward +Y,
// which on a surface with Y pointing down is clockwise.
func PointOnCircle(cx, cy, radius, angleDeg float64) Point {
	rad := NormalizeDegrees(angleDeg) * math.Pi / 180
	return Point{
		X: cx + radius*math.Cos(rad),
		Y: cy + radius*math.Sin(rad),
	}
}

// NormalizeDegrees wraps an angle to [0, 360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a -= 360
	}
	return a
}
