// Package telemetry records what happens in the tank: gameplay events,
// per-window statistics and frame timing.
package telemetry

import (
	"context"
	"log/slog"

	"github.com/pthm-cable/aquarium/components"
)

// EventKind identifies telemetry events.
type EventKind uint8

const (
	EventSpawned EventKind = iota
	EventSpawnRejected
	EventNPCBounce
	EventEaten
	EventDamaged
	EventDamageIgnored
	EventLifeGained
	EventBonusScore
	EventPowerIncreased
	EventPowerUpStarted
	EventPowerUpExpired
	EventLevelCompleted
	EventGameOver

	eventKindCount
)

var eventKindNames = [...]string{
	"spawned",
	"spawn_rejected",
	"npc_bounce",
	"eaten",
	"damaged",
	"damage_ignored",
	"life_gained",
	"bonus_score",
	"power_increased",
	"powerup_started",
	"powerup_expired",
	"level_completed",
	"game_over",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Chatty kinds fire many times per second and are logged at debug level.
func (k EventKind) Chatty() bool {
	switch k {
	case EventSpawned, EventNPCBounce, EventDamageIgnored:
		return true
	}
	return false
}

// Event is a single observability record. Tick is stamped by the Recorder.
type Event struct {
	Kind     EventKind
	Tick     int
	Level    int
	Creature components.Kind
	Value    int
	Score    int
	Lives    int
	Power    int
	X, Y     float64
}

// LogValue implements slog.LogValuer for structured logging.
func (e Event) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", e.Kind.String()),
		slog.Int("tick", e.Tick),
		slog.Int("level", e.Level),
		slog.String("creature", e.Creature.String()),
		slog.Int("value", e.Value),
		slog.Int("score", e.Score),
		slog.Int("lives", e.Lives),
		slog.Int("power", e.Power),
		slog.Float64("x", e.X),
		slog.Float64("y", e.Y),
	)
}

// EventCSV is a flat struct for CSV export of events.
type EventCSV struct {
	Tick     int     `csv:"tick"`
	Kind     string  `csv:"kind"`
	Level    int     `csv:"level"`
	Creature string  `csv:"creature"`
	Value    int     `csv:"value"`
	Score    int     `csv:"score"`
	Lives    int     `csv:"lives"`
	Power    int     `csv:"power"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
}

// ToCSV converts an Event to a flat CSV-friendly struct.
func (e Event) ToCSV() EventCSV {
	return EventCSV{
		Tick:     e.Tick,
		Kind:     e.Kind.String(),
		Level:    e.Level,
		Creature: e.Creature.String(),
		Value:    e.Value,
		Score:    e.Score,
		Lives:    e.Lives,
		Power:    e.Power,
		X:        e.X,
		Y:        e.Y,
	}
}

// Sink receives events.
type Sink interface {
	Record(e Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(e Event)

func (f SinkFunc) Record(e Event) { f(e) }

type discard struct{}

func (discard) Record(Event) {}

// Discard drops every event.
var Discard Sink = discard{}

type multi []Sink

func (m multi) Record(e Event) {
	for _, s := range m {
		s.Record(e)
	}
}

// Multi fans events out to every non-nil sink in order.
func Multi(sinks ...Sink) Sink {
	var m multi
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	switch len(m) {
	case 0:
		return Discard
	case 1:
		return m[0]
	}
	return m
}

// SlogSink writes events as structured log records.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink logging to l, or to slog.Default() if l is nil.
func NewSlogSink(l *slog.Logger) *SlogSink {
	return &SlogSink{logger: l}
}

func (s *SlogSink) Record(e Event) {
	l := s.logger
	if l == nil {
		l = slog.Default()
	}
	level := slog.LevelInfo
	if e.Kind.Chatty() {
		level = slog.LevelDebug
	}
	l.LogAttrs(context.Background(), level, e.Kind.String(), slog.Any("event", e))
}

// Recorder stamps the current tick on events before forwarding them.
type Recorder struct {
	next Sink
	tick int
}

// NewRecorder creates a recorder forwarding to next.
func NewRecorder(next Sink) *Recorder {
	if next == nil {
		next = Discard
	}
	return &Recorder{next: next}
}

// SetTick sets the tick stamped on subsequent events.
func (r *Recorder) SetTick(tick int) { r.tick = tick }

// Tick returns the current tick.
func (r *Recorder) Tick() int { return r.tick }

func (r *Recorder) Record(e Event) {
	e.Tick = r.tick
	r.next.Record(e)
}
