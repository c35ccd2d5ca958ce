// Package game hosts the aquarium scene: it owns the rng, telemetry,
// sound and, outside headless mode, the raylib window resources.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/aquarium/audio"
	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/inspector"
	"github.com/pthm-cable/aquarium/renderer"
	"github.com/pthm-cable/aquarium/scene"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
	"github.com/pthm-cable/aquarium/ui"
)

// Game holds the complete game state.
type Game struct {
	cfg       *config.Config
	opts      Options
	rng       *rand.Rand
	scene     *scene.Scene
	autopilot scene.Autopilot

	// State
	tick     int // monotonic across restarts
	restarts int
	paused   bool

	// Telemetry
	recorder      *telemetry.Recorder
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)

	sound *audio.SoundManager

	// Rendering, nil when headless
	camera       *camera.Camera
	textures     *renderer.Textures
	water        *renderer.WaterBackground
	hud          *ui.HUD
	gameOverView *ui.GameOverOverlay
	pausePanel   *ui.PausePanel
	effects      *systems.ParticleSystem
	inspector    *inspector.Inspector
	screenWidth  int32
	screenHeight int32
}

// NewGameWithOptions builds a game. Outside headless mode it must be
// called after the raylib window is created.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		cfg:           cfg,
		opts:          opts,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		autopilot:     scene.Autopilot{PanicRadius: cfg.Autopilot.PanicRadius},
		collector:     telemetry.NewCollector(statsWindow, cfg.Timing.DT),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		statsCallback: opts.StatsCallback,
		screenWidth:   int32(cfg.Screen.Width),
		screenHeight:  int32(cfg.Screen.Height),
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	sinks := []telemetry.Sink{g.collector}
	if om != nil {
		sinks = append(sinks, om)
	}
	if opts.LogEvents {
		sinks = append(sinks, telemetry.NewSlogSink(slog.Default()))
	}
	if opts.Sound && cfg.Audio.Enabled {
		g.sound = audio.NewSoundManager(cfg.Audio)
		if err := g.sound.Initialize(); err != nil {
			// Play on without sound.
			slog.Warn("audio unavailable", "error", err)
		}
		sinks = append(sinks, g.sound)
	}
	if !opts.Headless {
		g.effects = newEffects(opts.Seed)
		sinks = append(sinks, telemetry.SinkFunc(g.recordEffect))
	}
	if opts.Sink != nil {
		sinks = append(sinks, opts.Sink)
	}
	g.recorder = telemetry.NewRecorder(telemetry.Multi(sinks...))

	if err := g.newScene(); err != nil {
		om.Close()
		return nil, err
	}

	if !opts.Headless {
		g.initRendering()
	}
	return g, nil
}

func (g *Game) newScene() error {
	s, err := scene.Build(g.cfg, g.rng, g.recorder)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}
	s.SetPhaseMarker(g.perfCollector)
	g.scene = s
	return nil
}

// Restart replaces the scene with a fresh one. Telemetry keeps running.
func (g *Game) Restart() error {
	if err := g.newScene(); err != nil {
		return err
	}
	g.restarts++
	g.paused = false
	if g.inspector != nil {
		g.inspector.Deselect()
	}
	slog.Info("restart", "tick", g.tick, "restarts", g.restarts)
	return nil
}

// Scene returns the running scene.
func (g *Game) Scene() *scene.Scene { return g.scene }

// Tick returns the number of simulated frames since creation.
func (g *Game) Tick() int { return g.tick }

// Restarts returns how many times the scene was restarted.
func (g *Game) Restarts() int { return g.restarts }

// Over reports whether the current scene has ended.
func (g *Game) Over() bool { return g.scene.State() == scene.StateGameOver }

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool { return g.paused }

// SetPaused pauses or resumes the simulation.
func (g *Game) SetPaused(p bool) { g.paused = p }

// Unload releases every resource. Pending output is flushed.
func (g *Game) Unload() {
	if g.textures != nil {
		g.textures.Unload()
	}
	if g.water != nil {
		g.water.Unload()
	}
	if g.sound != nil {
		g.sound.Cleanup()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
