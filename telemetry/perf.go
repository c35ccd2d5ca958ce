package telemetry

import (
	"log/slog"
	"time"
)

// Phase is one timed slice of a frame.
type Phase uint8

// Frame phases in the order they run. The scene marks player, collision
// and tank itself; the collision phase only appears on frames where the
// collision gate fires.
const (
	PhaseInput Phase = iota
	PhasePlayer
	PhaseCollision
	PhaseTank
	PhaseTelemetry
	PhaseDraw

	phaseCount
)

var phaseNames = [phaseCount]string{"input", "player", "collision", "tank", "telemetry", "draw"}

func (p Phase) String() string {
	if p < phaseCount {
		return phaseNames[p]
	}
	return "unknown"
}

// PhaseMarker is told when a new phase of the current frame begins.
type PhaseMarker interface {
	StartPhase(Phase)
}

type noMarker struct{}

func (noMarker) StartPhase(Phase) {}

// NoPhases is a PhaseMarker that ignores every mark.
var NoPhases PhaseMarker = noMarker{}

type frameSample struct {
	total  time.Duration
	phases [phaseCount]time.Duration
	ran    [phaseCount]bool
}

// PerfCollector times frames and their phases over a ring of recent frames.
type PerfCollector struct {
	now func() time.Time

	samples []frameSample
	next    int
	count   int

	cur        frameSample
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	lastFrame     time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates a collector averaging over window frames.
func NewPerfCollector(window int) *PerfCollector {
	return NewPerfCollectorWithClock(window, time.Now)
}

// NewPerfCollectorWithClock creates a collector reading time from now.
func NewPerfCollectorWithClock(window int, now func() time.Time) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		now:     now,
		samples: make([]frameSample, window),
	}
}

// StartTick begins a new frame.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.cur = frameSample{}
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and opens ph.
func (p *PerfCollector) StartPhase(ph Phase) {
	if ph >= phaseCount {
		return
	}
	now := p.now()
	p.closePhase(now)
	p.phase = ph
	p.phaseStart = now
	p.inPhase = true
	p.cur.ran[ph] = true
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase {
		p.cur.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the frame and stores it in the ring.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.closePhase(now)
	p.inPhase = false
	p.cur.total = now.Sub(p.tickStart)

	p.samples[p.next] = p.cur
	p.next = (p.next + 1) % len(p.samples)
	if p.count < len(p.samples) {
		p.count++
	}
}

// RecordFrame measures the time since the previous call. Window mode only.
func (p *PerfCollector) RecordFrame() {
	now := p.now()
	if !p.lastFrame.IsZero() {
		p.frameDuration = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats aggregates the frames currently in the ring.
type PerfStats struct {
	AvgTick time.Duration
	MinTick time.Duration
	MaxTick time.Duration

	PhaseAvg [phaseCount]time.Duration
	PhasePct [phaseCount]float64 // share of the average frame, 0-100

	// CollisionFrames is the share of frames, 0-100, in which the gated
	// collision pass ran.
	CollisionFrames float64

	TicksPerSecond float64
	FrameDuration  time.Duration
	FPS            float64
}

// Pct returns the share of frame time spent in ph.
func (s PerfStats) Pct(ph Phase) float64 {
	if ph >= phaseCount {
		return 0
	}
	return s.PhasePct[ph]
}

// Stats aggregates the current window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{FrameDuration: p.frameDuration}
	if p.frameDuration > 0 {
		s.FPS = float64(time.Second) / float64(p.frameDuration)
	}
	if p.count == 0 {
		return s
	}

	var total time.Duration
	var sums [phaseCount]time.Duration
	collisions := 0
	for i := 0; i < p.count; i++ {
		fs := p.samples[i]
		total += fs.total
		if i == 0 || fs.total < s.MinTick {
			s.MinTick = fs.total
		}
		if fs.total > s.MaxTick {
			s.MaxTick = fs.total
		}
		for ph := range sums {
			sums[ph] += fs.phases[ph]
		}
		if fs.ran[PhaseCollision] {
			collisions++
		}
	}

	n := time.Duration(p.count)
	s.AvgTick = total / n
	for ph := range sums {
		s.PhaseAvg[ph] = sums[ph] / n
		if s.AvgTick > 0 {
			s.PhasePct[ph] = float64(s.PhaseAvg[ph]) / float64(s.AvgTick) * 100
		}
	}
	s.CollisionFrames = float64(collisions) / float64(p.count) * 100
	if s.AvgTick > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTick)
	}
	return s
}

// LogStats logs the window at Info level.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer. Phases under 0.1% are omitted.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("min_tick_us", s.MinTick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
		slog.Float64("collision_frames_pct", s.CollisionFrames),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for ph := Phase(0); ph < phaseCount; ph++ {
		if pct := s.PhasePct[ph]; pct > 0.1 {
			attrs = append(attrs, slog.Float64(ph.String()+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd       int     `csv:"window_end"`
	AvgTickUS       int64   `csv:"avg_tick_us"`
	MaxTickUS       int64   `csv:"max_tick_us"`
	FPS             float64 `csv:"fps"`
	CollisionFrames float64 `csv:"collision_frames_pct"`
	InputPct        float64 `csv:"input_pct"`
	PlayerPct       float64 `csv:"player_pct"`
	CollisionPct    float64 `csv:"collision_pct"`
	TankPct         float64 `csv:"tank_pct"`
	TelemetryPct    float64 `csv:"telemetry_pct"`
	DrawPct         float64 `csv:"draw_pct"`
}

// ToCSV flattens the stats for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:       windowEnd,
		AvgTickUS:       s.AvgTick.Microseconds(),
		MaxTickUS:       s.MaxTick.Microseconds(),
		FPS:             s.FPS,
		CollisionFrames: s.CollisionFrames,
		InputPct:        s.PhasePct[PhaseInput],
		PlayerPct:       s.PhasePct[PhasePlayer],
		CollisionPct:    s.PhasePct[PhaseCollision],
		TankPct:         s.PhasePct[PhaseTank],
		TelemetryPct:    s.PhasePct[PhaseTelemetry],
		DrawPct:         s.PhasePct[PhaseDraw],
	}
}
