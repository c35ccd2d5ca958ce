package telemetry

import "github.com/pthm-cable/aquarium/components"

// Snapshot is the game state sampled when a window is flushed.
type Snapshot struct {
	Level      int
	Score      int
	Lives      int
	Power      int
	PoweredUp  bool
	Population map[components.Kind]int
	Speeds     []float64
}

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int
	dt                  float64

	windowStartTick int
	counts          [eventKindCount]int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := 1
	if dt > 0 {
		ticksPerWindow = int(windowDurationSec / dt)
	}
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// Record counts an event in the current window.
func (c *Collector) Record(e Event) {
	if e.Kind < eventKindCount {
		c.counts[e.Kind]++
	}
}

// Count returns how many events of kind k the current window has seen.
func (c *Collector) Count(k EventKind) int {
	if k >= eventKindCount {
		return 0
	}
	return c.counts[k]
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int, snap Snapshot) WindowStats {
	elapsed := float64(currentTick-c.windowStartTick) * c.dt

	var eatRate float64
	if elapsed > 0 {
		eatRate = float64(c.counts[EventEaten]) / elapsed
	}

	speedMean, speedStd, p10, p50, p90 := ComputeSpeedStats(snap.Speeds)

	creatures := 0
	for _, n := range snap.Population {
		creatures += n
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Level:     snap.Level,
		Score:     snap.Score,
		Lives:     snap.Lives,
		Power:     snap.Power,
		PoweredUp: snap.PoweredUp,

		Creatures:  creatures,
		BaseFish:   snap.Population[components.KindBaseFish],
		BiggerFish: snap.Population[components.KindBiggerFish],
		PescaoCute: snap.Population[components.KindPescaoCute],
		ClownFish:  snap.Population[components.KindClownFish],

		Spawned:         c.counts[EventSpawned],
		SpawnRejected:   c.counts[EventSpawnRejected],
		Bounces:         c.counts[EventNPCBounce],
		Eaten:           c.counts[EventEaten],
		Damaged:         c.counts[EventDamaged],
		DamageIgnored:   c.counts[EventDamageIgnored],
		LivesGained:     c.counts[EventLifeGained],
		PowerUps:        c.counts[EventPowerUpStarted],
		LevelsCompleted: c.counts[EventLevelCompleted],
		EatRate:         eatRate,

		SpeedMean: speedMean,
		SpeedStd:  speedStd,
		SpeedP10:  p10,
		SpeedP50:  p50,
		SpeedP90:  p90,
	}

	c.windowStartTick = currentTick
	c.counts = [eventKindCount]int{}

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int {
	return c.windowDurationTicks
}
