package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/aquarium/config"
)

func TestNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: round trip %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestDefaultsWithinBounds(t *testing.T) {
	pv := NewParamVector()
	for _, s := range pv.Specs {
		if s.Default < s.Min || s.Default > s.Max {
			t.Errorf("%s default %v outside [%v, %v]", s.Name, s.Default, s.Min, s.Max)
		}
	}
}

func TestDefaultsMatchConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	got := pv.FromConfig(cfg)
	for i, s := range pv.Specs {
		if got[i] != s.Default {
			t.Errorf("%s: config has %v, spec default %v", s.Name, got[i], s.Default)
		}
	}
}

func TestApplyToConfigRoundTrip(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	want := []float64{3, 12, 240, 120, 90, 8, 20, 30}
	pv.ApplyToConfig(cfg, want)

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate after apply: %v", err)
	}
	got := pv.FromConfig(cfg)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s = %v, want %v", pv.Specs[i].Name, got[i], want[i])
		}
	}
}

func TestApplyToConfigClampsAndRounds(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	pv.ApplyToConfig(cfg, []float64{-10, 100, 250.6, 0, 1000, 7.4, 5, 60})

	if cfg.Spawn.MinSpeed != 1 {
		t.Errorf("min speed = %d, want clamped to 1", cfg.Spawn.MinSpeed)
	}
	if cfg.Spawn.MaxSpeed != 30 {
		t.Errorf("max speed = %d, want clamped to 30", cfg.Spawn.MaxSpeed)
	}
	if cfg.Timing.PowerUpDuration != 251 {
		t.Errorf("powerup duration = %d, want 251", cfg.Timing.PowerUpDuration)
	}
	if cfg.Timing.DamageDebounce != 60 {
		t.Errorf("debounce = %d, want clamped to 60", cfg.Timing.DamageDebounce)
	}
	if cfg.Levels[0].TargetScore != 7 {
		t.Errorf("level 1 target = %d, want 7", cfg.Levels[0].TargetScore)
	}
}

func TestScores(t *testing.T) {
	if got := sessionScore(180, 180); got != 1 {
		t.Errorf("sessionScore at target = %v, want 1", got)
	}
	if sessionScore(60, 180) >= sessionScore(150, 180) {
		t.Error("closer sessions should score higher")
	}
	if sessionScore(100, 0) != 0 {
		t.Error("zero target should score 0")
	}
	if progressScore(0) != 0 {
		t.Error("no progress should score 0")
	}
	if progressScore(3) <= progressScore(1) {
		t.Error("more levels should score higher")
	}
}

func TestEvaluateRuns(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 600, 10, []int64{1, 2}, cfg)

	f := fe.Evaluate(pv.DefaultVector())
	if f > 0 || f < -1 {
		t.Errorf("fitness %v outside [-1, 0]", f)
	}
	s := fe.LastSummary()
	if s.SessionSec <= 0 || s.SessionSec > 600*cfg.Timing.DT+1e-9 {
		t.Errorf("session %vs outside (0, %v]", s.SessionSec, 600*cfg.Timing.DT)
	}
	if cfg.Levels[0].TargetScore != 10 {
		t.Error("Evaluate modified the base config")
	}
}
