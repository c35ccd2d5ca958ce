package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/systems"
)

var particleColors = map[systems.ParticleType]rl.Color{
	systems.ParticleEat:    {R: 255, G: 215, B: 90, A: 255},
	systems.ParticleHurt:   {R: 230, G: 70, B: 60, A: 255},
	systems.ParticleBubble: {R: 190, G: 230, B: 255, A: 255},
}

// DrawParticles draws effect particles in tank coordinates, fading each
// one out over its life.
func DrawParticles(ps *systems.ParticleSystem) {
	if ps == nil {
		return
	}
	for _, p := range ps.Particles {
		c := particleColors[p.Type]
		c.A = uint8(float32(c.A) * p.Fade())
		center := rl.Vector2{X: p.X, Y: p.Y}
		if p.Type == systems.ParticleBubble {
			rl.DrawCircleLinesV(center, p.Size, c)
			continue
		}
		rl.DrawCircleV(center, p.Size, c)
	}
}
