package systems

import "gonum.org/v1/gonum/spatial/r2"

// Normalize returns (dx, dy) scaled to unit length. The zero vector stays
// zero.
func Normalize(dx, dy float64) (float64, float64) {
	v := r2.Vec{X: dx, Y: dy}
	if r2.Norm2(v) == 0 {
		return 0, 0
	}
	u := r2.Unit(v)
	return u.X, u.Y
}

// distance returns the Euclidean distance between two points.
func distance(x1, y1, x2, y2 float64) float64 {
	return r2.Norm(r2.Sub(r2.Vec{X: x1, Y: y1}, r2.Vec{X: x2, Y: y2}))
}
