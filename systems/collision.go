// Package systems provides the per-creature simulation rules: movement
// policies, bounds handling and collision tests.
package systems

import "github.com/pthm-cable/aquarium/components"

// CheckCollision reports whether two circles overlap or touch.
func CheckCollision(a, b components.Collider) bool {
	return distance(a.X, a.Y, b.X, b.Y) <= a.Radius+b.Radius
}
