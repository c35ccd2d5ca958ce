package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/telemetry"
)

// SoundManager plays a cue for each notable event it records. It
// implements telemetry.Sink. Before Initialize, and after Cleanup, it is
// silent.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	played      map[Cue]int
}

// NewSoundManager creates a sound manager from audio config.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &SoundManager{
		rate:   beep.SampleRate(rate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		played: make(map[Cue]int),
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Record plays the cue mapped to the event, if any.
func (sm *SoundManager) Record(e telemetry.Event) {
	if c := CueFor(e.Kind); c != CueNone {
		sm.Play(c)
	}
}

// Play queues a cue on the mixer.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.played[c]++
	if !sm.initialized {
		return
	}
	s := Streamer(c, sm.rate, sm.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Played returns how many times a cue was requested.
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[c]
}

// Volume returns the log2 gain applied to new cues.
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// SetVolume changes the log2 gain for cues queued from now on.
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = v
}

// Cleanup drops every queued cue. The speaker stays open; beep has no way
// to re-initialize it cleanly.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
