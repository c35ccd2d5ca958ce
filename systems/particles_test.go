package systems

import (
	"math/rand"
	"testing"
)

func TestParticleBurstRespectsCap(t *testing.T) {
	s := NewParticleSystem(rand.New(rand.NewSource(1)), 10)
	s.Burst(ParticleEat, 100, 100, 6)
	s.Burst(ParticleHurt, 100, 100, 6)
	if got := s.Count(); got != 10 {
		t.Errorf("Count() = %d, want 10", got)
	}
}

func TestParticlesExpire(t *testing.T) {
	s := NewParticleSystem(rand.New(rand.NewSource(1)), 0)
	s.Burst(ParticleEat, 0, 0, 20)
	s.Burst(ParticleBubble, 0, 0, 20)

	// Bubbles live at most 119 frames.
	for i := 0; i < 120; i++ {
		s.Update()
	}
	if got := s.Count(); got != 0 {
		t.Errorf("Count() = %d after 120 frames, want 0", got)
	}
}

func TestParticleMotionByType(t *testing.T) {
	tests := []struct {
		name  string
		ptype ParticleType
		rises bool
	}{
		{"bubbles rise", ParticleBubble, true},
		{"hurt sinks", ParticleHurt, false},
	}
	const n = 200
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewParticleSystem(rand.New(rand.NewSource(3)), n)
			s.Burst(tt.ptype, 0, 0, n)
			for i := 0; i < 25; i++ {
				s.Update()
			}
			if s.Count() != n {
				t.Fatalf("Count() = %d, want all %d alive after 25 frames", s.Count(), n)
			}
			var velY float32
			for _, p := range s.Particles {
				velY += p.VelY
				if f := p.Fade(); f <= 0 || f > 1 {
					t.Errorf("Fade() = %v, want (0, 1]", f)
				}
			}
			if rising := velY < 0; rising != tt.rises {
				t.Errorf("mean vertical velocity = %v, rises = %v", velY/n, tt.rises)
			}
		})
	}
}
