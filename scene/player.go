package scene

import (
	"github.com/pthm-cable/aquarium/aquarium"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/systems"
)

// PowerUpSpeedFactor scales the base speed while powered up.
const PowerUpSpeedFactor = 1.5

// PlayerConfig holds the player's starting state.
type PlayerConfig struct {
	X, Y            float64
	Speed           float64
	Radius          float64
	Lives           int
	Power           int
	PowerUpDuration int // frames
	Bounds          components.Bounds
	Sprite          components.Sprite
}

// Player is the input-driven creature. Damage debounce and power-up are
// independent countdowns, both in frames.
type Player struct {
	pos    components.Position
	mot    components.Motion
	body   components.Body
	sprite components.Sprite

	lives int
	power int
	score int

	baseSpeed       float64
	poweredUp       bool
	powerUpTimer    int
	powerUpDuration int
	debounce        int
}

// NewPlayer creates a player at rest.
func NewPlayer(cfg PlayerConfig) *Player {
	if cfg.Power < 1 {
		cfg.Power = 1
	}
	if cfg.Lives < 0 {
		cfg.Lives = 0
	}
	return &Player{
		pos:             components.Position{X: cfg.X, Y: cfg.Y},
		mot:             components.Motion{Speed: cfg.Speed},
		body:            components.Body{Radius: cfg.Radius, Bounds: cfg.Bounds},
		sprite:          cfg.Sprite,
		lives:           cfg.Lives,
		power:           cfg.Power,
		baseSpeed:       cfg.Speed,
		powerUpDuration: cfg.PowerUpDuration,
	}
}

// SetDirection sets the heading. Any non-zero input is normalized.
func (p *Player) SetDirection(dx, dy float64) {
	systems.SetDirection(&p.mot, dx, dy)
}

// Update ticks the damage and power-up countdowns, then moves. It reports
// whether the power-up expired during this call.
func (p *Player) Update() bool {
	if p.debounce > 0 {
		p.debounce--
	}

	expired := false
	if p.poweredUp {
		p.powerUpTimer--
		if p.powerUpTimer <= 0 {
			p.powerUpTimer = 0
			p.poweredUp = false
			p.mot.Speed = p.baseSpeed
			expired = true
		}
	}

	systems.Move(components.KindPlayer, &p.pos, &p.mot, &p.body, &p.sprite)
	return expired
}

// LoseLife takes one life and starts the debounce. It does nothing while a
// previous hit is still being debounced or when no lives are left.
func (p *Player) LoseLife(debounce int) bool {
	if p.debounce > 0 || p.lives <= 0 {
		return false
	}
	p.lives--
	p.debounce = debounce
	return true
}

// ActivatePowerUp boosts speed for the configured duration. It does not
// stack with a power-up already running.
func (p *Player) ActivatePowerUp() bool {
	if p.poweredUp {
		return false
	}
	p.poweredUp = true
	p.mot.Speed = p.baseSpeed * PowerUpSpeedFactor
	p.powerUpTimer = p.powerUpDuration
	return true
}

// AddToScore adds points scaled by multiplier.
func (p *Player) AddToScore(points, multiplier int) {
	p.score += points * multiplier
}

func (p *Player) IncreasePower(n int) { p.power += n }

// SetLives sets the life count, clamped at zero.
func (p *Player) SetLives(n int) {
	if n < 0 {
		n = 0
	}
	p.lives = n
}

func (p *Player) Score() int      { return p.score }
func (p *Player) Power() int      { return p.power }
func (p *Player) Lives() int      { return p.lives }
func (p *Player) PoweredUp() bool { return p.poweredUp }

// PowerUpRemaining returns the frames left on the power-up.
func (p *Player) PowerUpRemaining() int { return p.powerUpTimer }

// Debounce returns the frames left before damage counts again.
func (p *Player) Debounce() int { return p.debounce }

// Invulnerable reports whether damage is currently ignored.
func (p *Player) Invulnerable() bool { return p.debounce > 0 }

func (p *Player) Speed() float64     { return p.mot.Speed }
func (p *Player) BaseSpeed() float64 { return p.baseSpeed }

func (p *Player) Position() components.Position { return p.pos }
func (p *Player) Motion() components.Motion     { return p.mot }

// Collider returns the player's collision circle.
func (p *Player) Collider() components.Collider {
	return components.Collider{X: p.pos.X, Y: p.pos.Y, Radius: p.body.Radius}
}

// Snapshot describes the player in the same shape as an NPC, with power in
// place of value.
func (p *Player) Snapshot() aquarium.Creature {
	return aquarium.Creature{
		Kind:     components.KindPlayer,
		Value:    p.power,
		Position: p.pos,
		Motion:   p.mot,
		Radius:   p.body.Radius,
		Sprite:   p.sprite,
	}
}

// Tint is red while damage is debounced, yellow while powered up.
func (p *Player) Tint() components.Tint {
	switch {
	case p.Invulnerable():
		return components.TintDamage
	case p.poweredUp:
		return components.TintPower
	}
	return components.TintNone
}

// Draw draws the player sprite.
func (p *Player) Draw(d aquarium.Drawer) {
	if d == nil {
		return
	}
	d.DrawSprite(p.sprite, p.pos.X, p.pos.Y, p.Tint())
}
