package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
	"github.com/pthm-cable/aquarium/terminal"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("failed to read environment", "error", err)
		os.Exit(1)
	}

	// CLI flags, defaulted from AQUARIUM_* variables
	configPath := flag.String("config", env.ConfigPath, "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, steered by the autopilot")
	terminalMode := flag.Bool("terminal", false, "Play in the terminal")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", env.OutputDir, "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", env.Seed, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	sound := flag.Bool("sound", env.Sound, "Play sound cues")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// JSON logs to stdout, except in the terminal where they would corrupt
	// the screen.
	var logOut io.Writer = os.Stdout
	if *terminalMode {
		logOut = io.Discard
		if *outputDir != "" {
			if err := os.MkdirAll(*outputDir, 0755); err == nil {
				if f, err := os.Create(filepath.Join(*outputDir, "aquarium.log")); err == nil {
					defer f.Close()
					logOut = f
				}
			}
		}
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		LogEvents:      true,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		Headless:       *headless || *terminalMode,
		Autopilot:      *headless,
		Sound:          *sound && !*headless,
	}

	switch {
	case *terminalMode:
		err = runTerminal(opts)
	case *headless:
		err = runHeadless(opts, *maxTicks)
	default:
		err = runWindow(opts, cfg, *maxTicks)
	}
	if err != nil {
		slog.Error("aquarium failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless plays until game over or maxTicks.
func runHeadless(opts game.Options, maxTicks int) error {
	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"stats_window", opts.StatsWindowSec,
		"max_ticks", maxTicks,
	)

	for !g.Over() {
		g.UpdateHeadless()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			break
		}
	}

	hud := g.Scene().HUD()
	slog.Info("simulation finished",
		"tick", g.Tick(),
		"score", hud.Score,
		"power", hud.Power,
		"lives", hud.Lives,
		"level", hud.Level,
		"game_over", g.Over(),
	)
	return nil
}

// runWindow opens the raylib window and plays until it is closed.
func runWindow(opts game.Options, cfg *config.Config, maxTicks int) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			break
		}
	}
	return nil
}

// runTerminal plays in the terminal until quit or interrupt.
func runTerminal(opts game.Options) error {
	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.Cfg()
	canvas := terminal.NewCanvas(screen, cfg.Derived.TankW, cfg.Derived.TankH, terminal.GlyphsFromConfig(cfg))
	frame := time.Duration(cfg.Timing.DT * float64(time.Second))
	return terminal.NewHost(screen, g, canvas, frame).Run(ctx)
}
