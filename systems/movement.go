package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/aquarium/components"
)

// Policy describes how a kind turns its nominal speed into motion.
type Policy struct {
	SpeedFactor float64
	Wanders     bool
}

// policies is indexed by components.Kind.
var policies = [...]Policy{
	components.KindPlayer:     {SpeedFactor: 1},
	components.KindBaseFish:   {SpeedFactor: 1},
	components.KindBiggerFish: {SpeedFactor: 0.5},
	components.KindPescaoCute: {SpeedFactor: 1, Wanders: true},
	components.KindClownFish:  {SpeedFactor: 0.75},
}

// PolicyFor returns the movement policy of a kind. Unknown kinds move at
// full speed without wandering.
func PolicyFor(k components.Kind) Policy {
	if int(k) < len(policies) {
		return policies[k]
	}
	return Policy{SpeedFactor: 1}
}

// EffectiveSpeed returns the distance a creature of kind k covers per move.
func EffectiveSpeed(k components.Kind, speed float64) float64 {
	return speed * PolicyFor(k).SpeedFactor
}

// Move advances pos along mot at the kind's effective speed, keeps it inside
// the body's bounds and faces the sprite along dx.
func Move(k components.Kind, pos *components.Position, mot *components.Motion, body *components.Body, spr *components.Sprite) {
	speed := EffectiveSpeed(k, mot.Speed)
	pos.X += mot.DX * speed
	pos.Y += mot.DY * speed

	HandleBounds(pos, mot, body.Bounds)

	if spr != nil {
		spr.Flipped = mot.DX < 0
	}
}

// HandleBounds clamps pos into b and reflects the heading component that
// pointed out of the bounds, so the next move heads back inside.
func HandleBounds(pos *components.Position, mot *components.Motion, b components.Bounds) {
	if pos.X < b.MinX {
		pos.X = b.MinX
		mot.DX = math.Abs(mot.DX)
	} else if pos.X > b.MaxX {
		pos.X = b.MaxX
		mot.DX = -math.Abs(mot.DX)
	}

	if pos.Y < b.MinY {
		pos.Y = b.MinY
		mot.DY = math.Abs(mot.DY)
	} else if pos.Y > b.MaxY {
		pos.Y = b.MaxY
		mot.DY = -math.Abs(mot.DY)
	}
}

// SetDirection stores the normalized (dx, dy) on mot.
func SetDirection(mot *components.Motion, dx, dy float64) {
	mot.DX, mot.DY = Normalize(dx, dy)
}

// RandomDirection picks dx, dy from {-1, 0, 1} and normalizes. The result
// may be the zero vector, in which case the creature drifts in place.
func RandomDirection(rng *rand.Rand) (float64, float64) {
	dx := float64(rng.Intn(3) - 1)
	dy := float64(rng.Intn(3) - 1)
	return Normalize(dx, dy)
}

// Wander advances the wander timer and, when it fires, re-randomizes the
// heading from {-1, 0, 1} x 1.5 on each axis.
func Wander(w *components.Wander, mot *components.Motion, rng *rand.Rand) bool {
	if !w.Timer.Tick() {
		return false
	}
	dx := float64(rng.Intn(3)-1) * 1.5
	dy := float64(rng.Intn(3)-1) * 1.5
	SetDirection(mot, dx, dy)
	return true
}

// Bounce points each creature away from the midpoint of the pair. When the
// centers coincide both headings are reversed instead.
func Bounce(posA *components.Position, motA *components.Motion, posB *components.Position, motB *components.Motion) {
	midX := (posA.X + posB.X) / 2
	midY := (posA.Y + posB.Y) / 2

	if posA.X == posB.X && posA.Y == posB.Y {
		motA.DX, motA.DY = -motA.DX, -motA.DY
		motB.DX, motB.DY = -motB.DX, -motB.DY
		return
	}

	SetDirection(motA, posA.X-midX, posA.Y-midY)
	SetDirection(motB, posB.X-midX, posB.Y-midY)
}
