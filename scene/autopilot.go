package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/aquarium/aquarium"
)

// Autopilot steers the player without input: flee the nearest threat inside
// the panic radius, otherwise chase the nearest creature it can eat.
type Autopilot struct {
	PanicRadius float64
}

// Steer returns a unit heading for p, or (0, 0) when there is nothing to do.
func (ap Autopilot) Steer(p *Player, creatures []aquarium.Creature) (float64, float64) {
	self := r2.Vec{X: p.Position().X, Y: p.Position().Y}
	power := p.Power()

	var (
		threat, prey         r2.Vec
		threatDist, preyDist = math.Inf(1), math.Inf(1)
	)
	for _, c := range creatures {
		at := r2.Vec{X: c.Position.X, Y: c.Position.Y}
		// Distance between edges, so big fish count as close sooner.
		d := r2.Norm(r2.Sub(at, self)) - c.Radius
		if power < c.Value {
			if d < ap.PanicRadius && d < threatDist {
				threat, threatDist = at, d
			}
			continue
		}
		if d < preyDist {
			prey, preyDist = at, d
		}
	}

	var dir r2.Vec
	switch {
	case !math.IsInf(threatDist, 1):
		dir = r2.Sub(self, threat)
	case !math.IsInf(preyDist, 1):
		dir = r2.Sub(prey, self)
	default:
		return 0, 0
	}
	if r2.Norm2(dir) == 0 {
		return 0, 0
	}
	u := r2.Unit(dir)
	return u.X, u.Y
}
