package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/scene"
)

// HUD renders the score panel in the top-right corner.
type HUD struct {
	renderer *Renderer
	width    int32
	height   int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		width:    170,
		height:   85,
	}
}

// Draw renders the HUD. seconds drives the panel pulse.
func (h *HUD) Draw(data scene.HUD, screenWidth int32, seconds float64) {
	t := h.renderer.Theme
	x := screenWidth - h.width - t.Padding
	y := int32(5)

	h.renderer.DrawPanel(x, y, h.width, h.height, PulseColor(seconds))

	color := t.TextColor
	if data.PoweredUp {
		color = t.PoweredText
	}

	tx := x + t.Padding
	ty := y + t.Padding
	lines := []string{
		fmt.Sprintf("Score: %d", data.Score),
		fmt.Sprintf("Power: %d", data.Power),
		fmt.Sprintf("Lives: %d", data.Lives),
		fmt.Sprintf("Level: %d", data.Level),
	}
	for _, line := range lines {
		rl.DrawText(line, tx, ty, t.FontSize, color)
		ty += t.LineHeight
	}

	// One pip per life.
	for i := 0; i < data.Lives; i++ {
		cx := tx + int32(i)*t.PipSpacing + int32(t.PipRadius)
		rl.DrawCircle(cx, ty+int32(t.PipRadius), t.PipRadius, t.LifePip)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
