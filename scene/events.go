package scene

import "github.com/pthm-cable/aquarium/aquarium"

// GameEventType identifies scene events.
type GameEventType uint8

const (
	EventCollision GameEventType = iota
	EventGameOver
)

func (t GameEventType) String() string {
	switch t {
	case EventCollision:
		return "collision"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// GameEvent is an immutable record of something the scene resolved.
// A is the player; B is the NPC involved and nil for game over.
type GameEvent struct {
	Type GameEventType
	A    *aquarium.Creature
	B    *aquarium.Creature
}

func newCollision(a, b aquarium.Creature) GameEvent {
	return GameEvent{Type: EventCollision, A: &a, B: &b}
}

func newGameOver(a aquarium.Creature) GameEvent {
	return GameEvent{Type: EventGameOver, A: &a}
}

// IsCollision reports whether the event is a collision.
func (e GameEvent) IsCollision() bool { return e.Type == EventCollision }

// IsGameOver reports whether the event ended the game.
func (e GameEvent) IsGameOver() bool { return e.Type == EventGameOver }
