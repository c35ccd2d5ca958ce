// Package audio plays short synthesized cues for gameplay events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/pthm-cable/aquarium/telemetry"
)

// MinVolume is the log2 gain at and below which cues are silent.
const MinVolume = -6.0

// Cue identifies a sound.
type Cue uint8

const (
	CueNone Cue = iota
	CueEat
	CueHurt
	CueLifeUp
	CuePowerUp
	CueLevelUp
	CueGameOver
)

var cueNames = [...]string{"none", "eat", "hurt", "life_up", "power_up", "level_up", "game_over"}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// CueFor maps a telemetry event to the cue it sounds. Most events are
// silent.
func CueFor(kind telemetry.EventKind) Cue {
	switch kind {
	case telemetry.EventEaten:
		return CueEat
	case telemetry.EventDamaged:
		return CueHurt
	case telemetry.EventLifeGained:
		return CueLifeUp
	case telemetry.EventPowerUpStarted:
		return CuePowerUp
	case telemetry.EventLevelCompleted:
		return CueLevelUp
	case telemetry.EventGameOver:
		return CueGameOver
	default:
		return CueNone
	}
}

// note is one tone of a cue. Zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueEat:      {{880, 60 * time.Millisecond}},
	CueHurt:     {{220, 90 * time.Millisecond}, {165, 120 * time.Millisecond}},
	CueLifeUp:   {{660, 70 * time.Millisecond}, {990, 110 * time.Millisecond}},
	CuePowerUp:  {{523.25, 70 * time.Millisecond}, {659.25, 70 * time.Millisecond}, {783.99, 120 * time.Millisecond}},
	CueLevelUp:  {{392, 90 * time.Millisecond}, {0, 30 * time.Millisecond}, {587.33, 90 * time.Millisecond}, {783.99, 160 * time.Millisecond}},
	CueGameOver: {{392, 180 * time.Millisecond}, {311.13, 180 * time.Millisecond}, {196, 360 * time.Millisecond}},
}

// Duration returns the total length of a cue.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}

// Streamer builds the streamer for a cue at the given sample rate and log2
// volume. Returns nil for CueNone or an unknown cue.
func Streamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok || len(notes) == 0 {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, beep.Take(rate.N(n.dur), newTone(n.freq, rate)))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
		Silent:   volume <= MinVolume,
	}
}

// tone is an endless sine with a short fade-in to avoid clicks.
type tone struct {
	freq  float64
	rate  beep.SampleRate
	phase float64
	pos   int
	fade  int
}

func newTone(freq float64, rate beep.SampleRate) *tone {
	return &tone{freq: freq, rate: rate, fade: rate.N(5 * time.Millisecond)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := 0.0
		if t.freq > 0 {
			v = math.Sin(2 * math.Pi * t.phase)
			if t.pos < t.fade {
				v *= float64(t.pos) / float64(t.fade)
			}
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
