package main

import (
	"log/slog"
	"math"
	"sync"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
	"github.com/pthm-cable/aquarium/telemetry"
)

// Fitness weights. A good pacing keeps the autopilot alive for about the
// target session length while still clearing levels.
const (
	weightSession  = 0.6
	weightProgress = 0.4
)

// FitnessEvaluator runs headless autopilot sessions and scores them.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int
	targetSec  float64
	seeds      []int64
	baseConfig *config.Config

	mu       sync.Mutex
	lastRuns []runResult
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, targetSec float64, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		targetSec:  targetSec,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// runResult holds the outcome of one session.
type runResult struct {
	sessionSec      float64
	levelsCompleted int
	score           int
	eaten           int
}

// Summary averages the most recent evaluation's runs.
type Summary struct {
	SessionSec float64
	Levels     float64
	Score      float64
}

// LastSummary returns the averages of the most recent Evaluate call.
func (fe *FitnessEvaluator) LastSummary() Summary {
	fe.mu.Lock()
	defer fe.mu.Unlock()

	var s Summary
	if len(fe.lastRuns) == 0 {
		return s
	}
	for _, r := range fe.lastRuns {
		s.SessionSec += r.sessionSec
		s.Levels += float64(r.levelsCompleted)
		s.Score += float64(r.score)
	}
	n := float64(len(fe.lastRuns))
	s.SessionSec /= n
	s.Levels /= n
	s.Score /= n
	return s
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg, err := fe.baseConfig.Clone()
	if err != nil {
		slog.Error("failed to copy config", "error", err)
		return 0
	}
	fe.params.ApplyToConfig(cfg, x)
	if err := cfg.Validate(); err != nil {
		// Infeasible point; worst possible score.
		return 0
	}

	// Run all seeds in parallel, each on its own config copy
	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSession(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var total float64
	for _, r := range results {
		total += fe.computeFitness(r)
	}

	fe.mu.Lock()
	fe.lastRuns = results
	fe.mu.Unlock()

	return total / float64(len(results))
}

// runSession plays one autopilot session until game over or maxTicks.
func (fe *FitnessEvaluator) runSession(base *config.Config, seed int64) runResult {
	cfg, err := base.Clone()
	if err != nil {
		slog.Error("failed to copy config", "error", err)
		return runResult{}
	}

	var eaten int
	g, err := game.NewGameWithOptions(game.Options{
		Seed:      seed,
		Headless:  true,
		Autopilot: true,
		Config:    cfg,
		Sink: telemetry.SinkFunc(func(e telemetry.Event) {
			if e.Kind == telemetry.EventEaten {
				eaten++
			}
		}),
	})
	if err != nil {
		slog.Error("failed to build game", "seed", seed, "error", err)
		return runResult{}
	}
	defer g.Unload()

	for !g.Over() && g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
	}

	return runResult{
		sessionSec:      float64(g.Tick()) * cfg.Timing.DT,
		levelsCompleted: g.Scene().Aquarium().CurrentLevel(),
		score:           g.Scene().Player().Score(),
		eaten:           eaten,
	}
}

// computeFitness scores one session (lower = better, in [-1, 0]).
func (fe *FitnessEvaluator) computeFitness(r runResult) float64 {
	return -(weightSession*sessionScore(r.sessionSec, fe.targetSec) +
		weightProgress*progressScore(r.levelsCompleted))
}

// sessionScore peaks at 1 when the session lasts exactly target seconds.
func sessionScore(sec, target float64) float64 {
	if target <= 0 {
		return 0
	}
	d := (sec - target) / target
	return math.Exp(-d * d * 4)
}

// progressScore saturates toward 1 as more levels are cleared.
func progressScore(levels int) float64 {
	return 1 - math.Exp(-float64(levels)/2)
}
