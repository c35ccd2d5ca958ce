package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/telemetry"
)

func newHeadless(t *testing.T, opts Options) *Game {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	opts.Headless = true
	opts.Config = cfg
	g, err := NewGameWithOptions(opts)
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestHeadlessRunFlushesWindows(t *testing.T) {
	var windows []telemetry.WindowStats
	g := newHeadless(t, Options{
		Seed:           7,
		Autopilot:      true,
		StatsWindowSec: 1,
		StatsCallback:  func(s telemetry.WindowStats) { windows = append(windows, s) },
	})

	for i := 0; i < 600 && !g.Over(); i++ {
		g.UpdateHeadless()
	}

	if g.Tick() == 0 {
		t.Fatal("no ticks simulated")
	}
	if want := g.Tick() / g.collector.WindowDurationTicks(); len(windows) != want {
		t.Errorf("got %d windows after %d ticks, want %d", len(windows), g.Tick(), want)
	}
	for i := 1; i < len(windows); i++ {
		if windows[i].WindowEndTick <= windows[i-1].WindowEndTick {
			t.Fatalf("window end ticks not increasing: %d then %d",
				windows[i-1].WindowEndTick, windows[i].WindowEndTick)
		}
	}
}

func TestHeadlessDeterministic(t *testing.T) {
	run := func() (int, int, int) {
		g := newHeadless(t, Options{Seed: 42, Autopilot: true})
		for i := 0; i < 1200 && !g.Over(); i++ {
			g.UpdateHeadless()
		}
		h := g.Scene().HUD()
		return g.Tick(), h.Score, h.Lives
	}
	t1, s1, l1 := run()
	t2, s2, l2 := run()
	if t1 != t2 || s1 != s2 || l1 != l2 {
		t.Errorf("runs diverged: (%d,%d,%d) vs (%d,%d,%d)", t1, s1, l1, t2, s2, l2)
	}
}

func TestExtraSinkSeesTickStampedEvents(t *testing.T) {
	var events []telemetry.Event
	g := newHeadless(t, Options{
		Seed:      3,
		Autopilot: true,
		Sink:      telemetry.SinkFunc(func(e telemetry.Event) { events = append(events, e) }),
	})
	for i := 0; i < 120; i++ {
		g.UpdateHeadless()
	}

	if len(events) == 0 {
		t.Fatal("no events recorded")
	}
	for _, e := range events {
		if e.Tick < 0 || e.Tick >= g.Tick() {
			t.Fatalf("event %v has tick %d outside [0, %d)", e.Kind, e.Tick, g.Tick())
		}
	}
}

func TestRestartBuildsFreshScene(t *testing.T) {
	g := newHeadless(t, Options{Seed: 1, Autopilot: true})
	for i := 0; i < 100; i++ {
		g.UpdateHeadless()
	}
	old := g.Scene()
	ticks := g.Tick()

	if err := g.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if g.Scene() == old {
		t.Error("Restart kept the old scene")
	}
	if g.Scene().Tick() != 0 {
		t.Errorf("new scene tick = %d, want 0", g.Scene().Tick())
	}
	if g.Tick() != ticks {
		t.Errorf("game tick changed on restart: %d -> %d", ticks, g.Tick())
	}
	if g.Restarts() != 1 {
		t.Errorf("Restarts() = %d, want 1", g.Restarts())
	}
}

func TestStepRespectsPause(t *testing.T) {
	g := newHeadless(t, Options{Seed: 1})
	g.SetPaused(true)
	g.Step()
	if g.Tick() != 0 {
		t.Errorf("paused step advanced to tick %d", g.Tick())
	}
	g.SetPaused(false)
	g.Step()
	if g.Tick() != 1 {
		t.Errorf("tick = %d, want 1", g.Tick())
	}
}

func TestOutputDirReceivesLogs(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGameWithOptions(Options{
		Seed:           5,
		Headless:       true,
		Autopilot:      true,
		StatsWindowSec: 0.5,
		OutputDir:      dir,
		Config:         cfg,
	})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	for i := 0; i < 120; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	for _, name := range []string{"config.yaml", "telemetry.csv", "events.csv", "perf.csv"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestEffectsFollowEvents(t *testing.T) {
	g := newHeadless(t, Options{Seed: 1})
	if g.effects != nil {
		t.Fatal("headless game should not build particle effects")
	}

	g.effects = newEffects(1)
	tests := []struct {
		kind telemetry.EventKind
		want int
	}{
		{telemetry.EventEaten, 10},
		{telemetry.EventDamaged, 24},
		{telemetry.EventNPCBounce, 24},
		{telemetry.EventLevelCompleted, 40},
	}
	for _, tt := range tests {
		g.recordEffect(telemetry.Event{Kind: tt.kind, X: 100, Y: 100})
		if got := g.effects.Count(); got != tt.want {
			t.Errorf("after %s Count() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}
