package scene

import (
	"math"
	"testing"

	"github.com/pthm-cable/aquarium/components"
)

func testPlayer() *Player {
	return NewPlayer(PlayerConfig{
		X: 100, Y: 100,
		Speed:           4,
		Radius:          10,
		Lives:           3,
		Power:           1,
		PowerUpDuration: 3,
		Bounds:          components.Inset(800, 600, 20),
	})
}

func TestLoseLifeDebounce(t *testing.T) {
	p := testPlayer()

	if !p.LoseLife(5) {
		t.Fatal("first LoseLife returned false")
	}
	if p.Lives() != 2 || p.Debounce() != 5 {
		t.Fatalf("lives/debounce = %d/%d, want 2/5", p.Lives(), p.Debounce())
	}

	for i := 0; i < 4; i++ {
		if p.LoseLife(5) {
			t.Fatalf("LoseLife succeeded during debounce at frame %d", i)
		}
		p.Update()
	}
	if p.Lives() != 2 {
		t.Errorf("lives = %d during debounce, want 2", p.Lives())
	}

	p.Update()
	if p.Debounce() != 0 {
		t.Fatalf("debounce = %d, want 0", p.Debounce())
	}
	if !p.LoseLife(5) || p.Lives() != 1 {
		t.Errorf("LoseLife after debounce: lives = %d, want 1", p.Lives())
	}
}

func TestLoseLifeNeverNegative(t *testing.T) {
	p := testPlayer()
	p.SetLives(0)
	if p.LoseLife(0) {
		t.Error("LoseLife at zero lives returned true")
	}
	if p.Lives() != 0 {
		t.Errorf("lives = %d, want 0", p.Lives())
	}

	p.SetLives(-3)
	if p.Lives() != 0 {
		t.Errorf("SetLives(-3) gave %d, want 0", p.Lives())
	}
}

func TestPowerUpSpeed(t *testing.T) {
	p := testPlayer()

	if !p.ActivatePowerUp() {
		t.Fatal("ActivatePowerUp returned false")
	}
	if p.Speed() != 6 {
		t.Errorf("speed = %v, want 6", p.Speed())
	}

	p.Update()
	if p.ActivatePowerUp() {
		t.Error("ActivatePowerUp stacked on an active power-up")
	}
	if p.PowerUpRemaining() != 2 {
		t.Errorf("remaining = %d, want 2 (not reset)", p.PowerUpRemaining())
	}

	if p.Update() {
		t.Error("expired one frame early")
	}
	if !p.Update() {
		t.Error("expected expiry on the third update")
	}
	if p.Speed() != 4 || p.PoweredUp() {
		t.Errorf("speed = %v poweredUp = %v after expiry", p.Speed(), p.PoweredUp())
	}
	if p.Update() {
		t.Error("expiry reported twice")
	}
	if p.Speed() != p.BaseSpeed() {
		t.Errorf("speed = %v, want base %v", p.Speed(), p.BaseSpeed())
	}
}

func TestSetDirectionNormalizes(t *testing.T) {
	p := testPlayer()

	tests := []struct {
		dx, dy float64
	}{
		{1, 0}, {3, 4}, {-1, -1}, {0, 0}, {0.001, 0},
	}
	for _, tt := range tests {
		p.SetDirection(tt.dx, tt.dy)
		m := p.Motion()
		l := math.Hypot(m.DX, m.DY)
		if tt.dx == 0 && tt.dy == 0 {
			if l != 0 {
				t.Errorf("SetDirection(0, 0) gave length %v", l)
			}
			continue
		}
		if math.Abs(l-1) > 1e-9 {
			t.Errorf("SetDirection(%v, %v) gave length %v", tt.dx, tt.dy, l)
		}
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	p := testPlayer()
	bounds := components.Inset(800, 600, 20)
	p.SetDirection(-1, -1)
	p.ActivatePowerUp()
	for i := 0; i < 500; i++ {
		p.Update()
		pos := p.Position()
		if !bounds.Contains(pos.X, pos.Y) {
			t.Fatalf("frame %d: position (%v, %v) out of bounds", i, pos.X, pos.Y)
		}
	}
}

func TestPlayerTint(t *testing.T) {
	p := testPlayer()
	if p.Tint() != components.TintNone {
		t.Error("fresh player should be untinted")
	}
	p.ActivatePowerUp()
	if p.Tint() != components.TintPower {
		t.Error("powered-up player should be tinted yellow")
	}
	p.LoseLife(10)
	if p.Tint() != components.TintDamage {
		t.Error("damaged player should be tinted red")
	}
}
