package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a filled panel with an outline.
func (r *Renderer) DrawPanel(x, y, width, height int32, bg rl.Color) {
	rl.DrawRectangle(x, y, width, height, bg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawCentered draws text horizontally centered on cx.
func (r *Renderer) DrawCentered(text string, cx, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, y, size, color)
}

// PulseColor cycles the HUD panel between a deep and a light blue, three
// radians per second.
func PulseColor(seconds float64) rl.Color {
	pulse := (math.Sin(seconds*3) + 1) * 0.5
	return rl.Color{
		R: uint8(30 + pulse*50),
		G: uint8(100 + pulse*100),
		B: uint8(200 + pulse*55),
		A: 180,
	}
}
