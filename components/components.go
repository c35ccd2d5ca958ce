// Package components defines ECS components for the aquarium.
package components

// Position represents a creature's center in tank coordinates.
type Position struct {
	X, Y float64
}

// Motion holds a creature's heading and nominal speed.
// (DX, DY) is unit length or exactly zero.
type Motion struct {
	DX, DY float64
	Speed  float64
}

// Bounds is the rectangle a creature's center is kept inside.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Inset returns bounds covering a width x height tank shrunk by margin on
// every side.
func Inset(width, height, margin float64) Bounds {
	return Bounds{
		MinX: margin,
		MinY: margin,
		MaxX: width - margin,
		MaxY: height - margin,
	}
}

// Contains reports whether (x, y) lies inside the bounds, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Body holds physical properties of a creature.
type Body struct {
	Radius float64
	Bounds Bounds
}

// Species identifies a creature's variant and its power threshold.
type Species struct {
	Kind  Kind
	Value int
}

// Wander re-randomizes a creature's heading whenever its timer fires.
type Wander struct {
	Timer Ticker
}

// Collider is the circle used by collision tests.
type Collider struct {
	X, Y   float64
	Radius float64
}
