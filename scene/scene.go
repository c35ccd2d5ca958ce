// Package scene runs one game: the player, the tank, and the rules that
// turn collisions into score, lives and power.
package scene

import (
	"github.com/pthm-cable/aquarium/aquarium"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/telemetry"
)

// State is the scene's lifecycle state.
type State uint8

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// Rules holds the scoring and timing constants. Durations are in frames.
type Rules struct {
	DamageDebounce    int
	LifeCap           int
	PowerUpEvery      int // score multiple that starts a power-up; 0 disables
	PowerStepEvery    int // score multiple that raises power; 0 disables
	ClownBonus        int
	CollisionInterval int // collision pass and tank update run every N frames
}

// DefaultRules returns the stock rules at 60 frames per second.
func DefaultRules() Rules {
	return Rules{
		DamageDebounce:    180,
		LifeCap:           5,
		PowerUpEvery:      10,
		PowerStepEvery:    25,
		ClownBonus:        2,
		CollisionInterval: 2,
	}
}

// HUD is what the heads-up display shows.
type HUD struct {
	Score     int
	Power     int
	Lives     int
	PoweredUp bool
	Level     int
}

// Scene drives the player and the tank frame by frame.
type Scene struct {
	player *Player
	tank   *aquarium.Aquarium
	rules  Rules
	sink   telemetry.Sink
	phases telemetry.PhaseMarker

	gate  components.Ticker
	state State
	last  *GameEvent
	frame int
}

// New creates a scene. The tank is shared, not owned.
func New(player *Player, tank *aquarium.Aquarium, rules Rules, sink telemetry.Sink) *Scene {
	if sink == nil {
		sink = telemetry.Discard
	}
	return &Scene{
		player: player,
		tank:   tank,
		rules:  rules,
		sink:   sink,
		phases: telemetry.NoPhases,
		gate:   components.NewTicker(rules.CollisionInterval),
	}
}

func (s *Scene) Player() *Player              { return s.player }
func (s *Scene) Aquarium() *aquarium.Aquarium { return s.tank }
func (s *Scene) Rules() Rules                 { return s.rules }
func (s *Scene) State() State                 { return s.state }

// Tick returns the number of frames Update has run while playing.
func (s *Scene) Tick() int { return s.frame }

// LastEvent returns the most recent game event.
func (s *Scene) LastEvent() (GameEvent, bool) {
	if s.last == nil {
		return GameEvent{}, false
	}
	return *s.last, true
}

// SetPhaseMarker reports the player, collision and tank phases of each
// Update to m. A nil marker disables reporting.
func (s *Scene) SetPhaseMarker(m telemetry.PhaseMarker) {
	if m == nil {
		m = telemetry.NoPhases
	}
	s.phases = m
}

// Update advances one frame. It does nothing once the game is over.
func (s *Scene) Update() {
	if s.state == StateGameOver {
		return
	}
	s.frame++
	p := s.player
	s.phases.StartPhase(telemetry.PhasePlayer)

	if multipleOf(p.Score(), s.rules.PowerUpEvery) && !p.PoweredUp() {
		if p.ActivatePowerUp() {
			s.emit(telemetry.EventPowerUpStarted, components.KindPlayer, 0)
		}
	}

	if p.Update() {
		s.emit(telemetry.EventPowerUpExpired, components.KindPlayer, 0)
	}

	if !s.gate.Tick() {
		return
	}

	s.phases.StartPhase(telemetry.PhaseCollision)
	if c, ok := s.DetectCollision(); ok {
		ev := newCollision(p.Snapshot(), c)
		s.last = &ev

		if p.Power() < c.Value {
			if p.LoseLife(s.rules.DamageDebounce) {
				s.emit(telemetry.EventDamaged, c.Kind, c.Value)
			} else {
				s.emit(telemetry.EventDamageIgnored, c.Kind, c.Value)
			}
			if p.Lives() <= 0 {
				s.state = StateGameOver
				over := newGameOver(p.Snapshot())
				s.last = &over
				s.emit(telemetry.EventGameOver, c.Kind, c.Value)
				return
			}
		} else {
			s.consume(c)
		}
	}

	s.phases.StartPhase(telemetry.PhaseTank)
	s.tank.Update()
}

// DetectCollision returns the first NPC, in tank order, touching the player.
func (s *Scene) DetectCollision() (aquarium.Creature, bool) {
	return s.tank.FirstOverlap(s.player.Collider())
}

func (s *Scene) consume(c aquarium.Creature) {
	p := s.player

	s.tank.RemoveCreature(c.Entity)
	p.AddToScore(1, c.Value)
	s.emit(telemetry.EventEaten, c.Kind, c.Value)

	switch c.Kind {
	case components.KindPescaoCute:
		if p.Lives() < s.rules.LifeCap {
			p.SetLives(p.Lives() + 1)
			s.emit(telemetry.EventLifeGained, c.Kind, c.Value)
		}
	case components.KindClownFish:
		p.AddToScore(s.rules.ClownBonus, 1)
		s.emit(telemetry.EventBonusScore, c.Kind, s.rules.ClownBonus)
	}

	if multipleOf(p.Score(), s.rules.PowerStepEvery) {
		p.IncreasePower(1)
		s.emit(telemetry.EventPowerIncreased, c.Kind, c.Value)
	}
}

// Draw draws the player, then the tank.
func (s *Scene) Draw(d aquarium.Drawer) {
	s.player.Draw(d)
	s.tank.Draw(d)
}

// HUD returns the values shown on the heads-up display.
func (s *Scene) HUD() HUD {
	return HUD{
		Score:     s.player.Score(),
		Power:     s.player.Power(),
		Lives:     s.player.Lives(),
		PoweredUp: s.player.PoweredUp(),
		Level:     s.tank.LevelIndex() + 1,
	}
}

// Snapshot samples the state recorded with each telemetry window.
func (s *Scene) Snapshot() telemetry.Snapshot {
	return telemetry.Snapshot{
		Level:      s.tank.CurrentLevel(),
		Score:      s.player.Score(),
		Lives:      s.player.Lives(),
		Power:      s.player.Power(),
		PoweredUp:  s.player.PoweredUp(),
		Population: s.tank.Population(),
		Speeds:     s.tank.Speeds(),
	}
}

func (s *Scene) emit(kind telemetry.EventKind, creature components.Kind, value int) {
	pos := s.player.Position()
	s.sink.Record(telemetry.Event{
		Kind:     kind,
		Level:    s.tank.CurrentLevel(),
		Creature: creature,
		Value:    value,
		Score:    s.player.Score(),
		Lives:    s.player.Lives(),
		Power:    s.player.Power(),
		X:        pos.X,
		Y:        pos.Y,
	})
}

// multipleOf reports whether score is a positive multiple of n.
func multipleOf(score, n int) bool {
	return n > 0 && score > 0 && score%n == 0
}
