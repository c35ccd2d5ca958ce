package game

import (
	"math/rand"

	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
)

const maxEffectParticles = 400

func newEffects(seed int64) *systems.ParticleSystem {
	return systems.NewParticleSystem(rand.New(rand.NewSource(seed)), maxEffectParticles)
}

// recordEffect turns gameplay events into particle bursts at the player.
func (g *Game) recordEffect(e telemetry.Event) {
	x, y := float32(e.X), float32(e.Y)
	switch e.Kind {
	case telemetry.EventEaten:
		g.effects.Burst(systems.ParticleEat, x, y, 10)
	case telemetry.EventDamaged:
		g.effects.Burst(systems.ParticleHurt, x, y, 14)
	case telemetry.EventLifeGained, telemetry.EventPowerUpStarted, telemetry.EventLevelCompleted:
		g.effects.Burst(systems.ParticleBubble, x, y, 16)
	}
}
