package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/scene"
)

// GameOverOverlay dims the tank and offers a restart.
type GameOverOverlay struct {
	renderer *Renderer
}

// NewGameOverOverlay creates the overlay.
func NewGameOverOverlay() *GameOverOverlay {
	return &GameOverOverlay{renderer: NewRenderer()}
}

// Draw renders the overlay and reports whether restart was clicked.
func (o *GameOverOverlay) Draw(data scene.HUD, screenWidth, screenHeight int32) bool {
	t := o.renderer.Theme
	rl.DrawRectangle(0, 0, screenWidth, screenHeight, t.OverlayBg)

	cx := screenWidth / 2
	cy := screenHeight / 2
	o.renderer.DrawCentered("GAME OVER", cx, cy-80, t.TitleFontSize, t.LifePip)
	o.renderer.DrawCentered(fmt.Sprintf("Score %d  Power %d  Level %d", data.Score, data.Power, data.Level), cx, cy-25, 20, t.TextColor)

	bounds := rl.Rectangle{
		X:      float32(cx) - t.ButtonWidth/2,
		Y:      float32(cy) + 20,
		Width:  t.ButtonWidth,
		Height: t.ButtonHeight,
	}
	return gui.Button(bounds, "Restart")
}

// PausePanel shows pause state and the sound volume slider.
type PausePanel struct {
	renderer *Renderer
}

// NewPausePanel creates the panel.
func NewPausePanel() *PausePanel {
	return &PausePanel{renderer: NewRenderer()}
}

// Draw renders the panel and returns the possibly changed volume and
// whether resume was clicked. Volume is a log2 gain in [-6, 2].
func (p *PausePanel) Draw(volume float64, screenWidth, screenHeight int32) (float64, bool) {
	t := p.renderer.Theme
	rl.DrawRectangle(0, 0, screenWidth, screenHeight, t.OverlayBg)

	cx := screenWidth / 2
	cy := screenHeight / 2
	p.renderer.DrawCentered("PAUSED", cx, cy-80, t.TitleFontSize, t.TextColor)

	x := float32(cx) - 120
	y := float32(cy) - 20
	rl.DrawText("Volume", int32(x), int32(y)-18, t.FontSize, t.TextColor)
	newVolume := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: 240, Height: 20},
		"-6", "2",
		float32(volume), -6, 2,
	)

	resume := gui.Button(rl.Rectangle{
		X:      float32(cx) - t.ButtonWidth/2,
		Y:      y + 40,
		Width:  t.ButtonWidth,
		Height: t.ButtonHeight,
	}, "Resume")

	return float64(newVolume), resume
}
