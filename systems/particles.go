package systems

import (
	"math"
	"math/rand"
)

// ParticleType identifies the type of effect particle.
type ParticleType uint8

const (
	ParticleEat ParticleType = iota
	ParticleHurt
	ParticleBubble
)

// EffectParticle is one short-lived visual feedback particle.
type EffectParticle struct {
	X, Y       float32
	VelX, VelY float32
	Life       int32
	MaxLife    int32
	Type       ParticleType
	Size       float32
}

// Fade returns the remaining life as a fraction in (0, 1].
func (p EffectParticle) Fade() float32 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float32(p.Life) / float32(p.MaxLife)
}

// ParticleSystem manages effect particles. It draws from its own rng so
// effects never perturb the simulation's random sequence.
type ParticleSystem struct {
	Particles    []EffectParticle
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates a particle system holding at most max particles.
func NewParticleSystem(rng *rand.Rand, max int) *ParticleSystem {
	if max <= 0 {
		max = 500
	}
	return &ParticleSystem{
		Particles:    make([]EffectParticle, 0, max),
		maxParticles: max,
		rng:          rng,
	}
}

// Update ages every particle by one frame and drops the expired ones.
func (s *ParticleSystem) Update() {
	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Life--
		if p.Life <= 0 {
			continue
		}

		switch p.Type {
		case ParticleHurt:
			// Sink
			p.VelY += 0.03
		case ParticleBubble:
			// Rise and wobble
			p.VelY -= 0.02
			p.VelX += (s.rng.Float32() - 0.5) * 0.1
		}

		p.VelX *= 0.95
		p.VelY *= 0.95
		p.X += p.VelX
		p.Y += p.VelY

		s.Particles[alive] = *p
		alive++
	}
	s.Particles = s.Particles[:alive]
}

// Burst emits up to count particles of type t around (x, y). Particles
// past the cap are dropped.
func (s *ParticleSystem) Burst(t ParticleType, x, y float32, count int) {
	for i := 0; i < count && len(s.Particles) < s.maxParticles; i++ {
		s.Particles = append(s.Particles, s.newParticle(t, x, y))
	}
}

func (s *ParticleSystem) newParticle(t ParticleType, x, y float32) EffectParticle {
	angle := s.rng.Float64() * 2 * math.Pi
	var speed float32
	var life int32
	var size float32

	switch t {
	case ParticleEat:
		speed = 1 + s.rng.Float32()*1.5
		life = 25 + s.rng.Int31n(20)
		size = 2 + s.rng.Float32()*2
	case ParticleHurt:
		speed = 2 + s.rng.Float32()*2
		life = 30 + s.rng.Int31n(25)
		size = 3 + s.rng.Float32()*2
	default:
		speed = 0.3 + s.rng.Float32()*0.5
		life = 60 + s.rng.Int31n(60)
		size = 3 + s.rng.Float32()*4
	}

	return EffectParticle{
		X:       x + (s.rng.Float32()-0.5)*8,
		Y:       y + (s.rng.Float32()-0.5)*8,
		VelX:    float32(math.Cos(angle)) * speed,
		VelY:    float32(math.Sin(angle)) * speed,
		Life:    life,
		MaxLife: life,
		Type:    t,
		Size:    size,
	}
}

// Count returns the current number of active particles.
func (s *ParticleSystem) Count() int {
	return len(s.Particles)
}
