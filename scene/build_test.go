package scene

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/telemetry"
)

func TestBuildFromDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	s, err := Build(cfg, rand.New(rand.NewSource(7)), telemetry.Discard)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if s.Aquarium().LevelCount() != len(cfg.Levels) {
		t.Errorf("LevelCount() = %d, want %d", s.Aquarium().LevelCount(), len(cfg.Levels))
	}
	if hud := s.HUD(); hud.Lives != cfg.Player.Lives || hud.Level != 1 || hud.Power != cfg.Player.Power {
		t.Errorf("HUD() = %+v", hud)
	}

	// The tank fills on the first gated frame.
	s.Update()
	s.Update()
	if got := s.Aquarium().Population()[components.KindBaseFish]; got != 10 {
		t.Errorf("BaseFish population = %d, want 10", got)
	}
}

func TestBuildRejectsBadLevel(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Levels[0].Population = append(cfg.Levels[0].Population, config.PopulationConfig{Kind: "Shark", Count: 1})

	if _, err := Build(cfg, rand.New(rand.NewSource(1)), nil); err == nil {
		t.Error("Build accepted an unknown creature kind")
	}
}

// Runs the same seed twice with the autopilot and expects identical games.
func TestAutopilotRunIsDeterministic(t *testing.T) {
	run := func() HUD {
		cfg, err := config.Load("")
		if err != nil {
			t.Fatal(err)
		}
		s, err := Build(cfg, rand.New(rand.NewSource(99)), nil)
		if err != nil {
			t.Fatal(err)
		}
		ap := Autopilot{PanicRadius: cfg.Autopilot.PanicRadius}
		for i := 0; i < 3000 && s.State() == StatePlaying; i++ {
			s.Player().SetDirection(ap.Steer(s.Player(), s.Aquarium().Creatures()))
			s.Update()
		}
		return s.HUD()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
}
