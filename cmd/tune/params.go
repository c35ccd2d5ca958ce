package main

import (
	"math"

	"github.com/pthm-cable/aquarium/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable pacing parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of pacing parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Spawn
			{Name: "spawn_min_speed", Path: "spawn.min_speed", Min: 1, Max: 5, Default: 1},
			{Name: "spawn_max_speed", Path: "spawn.max_speed", Min: 6, Max: 30, Default: 25},
			// Timing
			{Name: "powerup_duration", Path: "timing.powerup_duration", Min: 60, Max: 600, Default: 300},
			{Name: "damage_debounce", Path: "timing.damage_debounce", Min: 60, Max: 300, Default: 180},
			{Name: "wander_interval", Path: "timing.wander_interval", Min: 20, Max: 180, Default: 60},
			// Level targets
			{Name: "level1_target", Path: "levels[0].target_score", Min: 5, Max: 30, Default: 10},
			{Name: "level2_target", Path: "levels[1].target_score", Min: 5, Max: 40, Default: 15},
			{Name: "level3_target", Path: "levels[2].target_score", Min: 10, Max: 60, Default: 25},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = math.Min(math.Max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes parameter values into cfg. Every tuned value is an
// integer count of speed units, frames or points, so values are rounded.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	n := func(i int) int { return int(math.Round(clamped[i])) }

	// Order must match Specs order
	cfg.Spawn.MinSpeed = n(0)
	cfg.Spawn.MaxSpeed = max(n(1), cfg.Spawn.MinSpeed)
	cfg.Timing.PowerUpDuration = n(2)
	cfg.Timing.DamageDebounce = n(3)
	cfg.Timing.WanderInterval = n(4)
	for i := 0; i < 3 && i < len(cfg.Levels); i++ {
		cfg.Levels[i].TargetScore = n(5 + i)
	}
}

// FromConfig reads the tuned values back out of cfg.
func (pv *ParamVector) FromConfig(cfg *config.Config) []float64 {
	v := pv.DefaultVector()
	v[0] = float64(cfg.Spawn.MinSpeed)
	v[1] = float64(cfg.Spawn.MaxSpeed)
	v[2] = float64(cfg.Timing.PowerUpDuration)
	v[3] = float64(cfg.Timing.DamageDebounce)
	v[4] = float64(cfg.Timing.WanderInterval)
	for i := 0; i < 3 && i < len(cfg.Levels); i++ {
		v[5+i] = float64(cfg.Levels[i].TargetScore)
	}
	return v
}
