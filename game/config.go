package game

import (
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/telemetry"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	Headless       bool    // No raylib resources; drive with UpdateHeadless
	Autopilot      bool    // Steer the player with scene.Autopilot
	LogStats       bool    // Log window and perf stats via slog
	LogEvents      bool    // Log every gameplay event via slog
	StatsWindowSec float64 // 0 = use config
	OutputDir      string  // CSV logs and config snapshot; empty disables
	Sound          bool

	// Config overrides the global config (used by the tuner).
	Config *config.Config

	// StatsCallback receives every flushed window.
	StatsCallback func(telemetry.WindowStats)

	// Sink receives every event in addition to the built-in sinks.
	Sink telemetry.Sink
}
