// Package terminal runs the aquarium in a text terminal with tcell.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/scene"
)

// hudRows is the number of rows above the tank.
const hudRows = 1

// Glyph is how one texture looks in a terminal cell.
type Glyph struct {
	Rune  rune
	Color tcell.Color
}

// mirrored maps glyphs to their left-facing form.
var mirrored = map[rune]rune{
	'>': '<', '<': '>',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'/': '\\', '\\': '/',
}

// Canvas maps tank coordinates onto the screen grid. It implements
// aquarium.Drawer.
type Canvas struct {
	screen tcell.Screen
	tankW  float64
	tankH  float64
	glyphs map[components.TextureID]Glyph
}

// NewCanvas creates a canvas for a tankW x tankH tank.
func NewCanvas(screen tcell.Screen, tankW, tankH float64, glyphs map[components.TextureID]Glyph) *Canvas {
	return &Canvas{screen: screen, tankW: tankW, tankH: tankH, glyphs: glyphs}
}

// GlyphsFromConfig builds the glyph table from config. Texture IDs match
// creature kinds.
func GlyphsFromConfig(cfg *config.Config) map[components.TextureID]Glyph {
	glyphs := make(map[components.TextureID]Glyph, len(cfg.Derived.Kinds)+1)
	glyphs[components.TextureID(components.KindPlayer)] = newGlyph(cfg.Player.Glyph, cfg.Derived.PlayerTint)
	for k, cc := range cfg.Derived.Kinds {
		tint, _ := config.ParseColor(cc.Color)
		glyphs[components.TextureID(k)] = newGlyph(cc.Glyph, tint)
	}
	return glyphs
}

func newGlyph(s string, tint components.Tint) Glyph {
	r := '?'
	for _, c := range s {
		r = c
		break
	}
	return Glyph{Rune: r, Color: rgb(tint)}
}

func rgb(t components.Tint) tcell.Color {
	return tcell.NewRGBColor(int32(t.R), int32(t.G), int32(t.B))
}

// Cell returns the screen cell holding tank point (x, y), clamped to the
// tank area. ok is false when the screen has no room for the tank.
func (c *Canvas) Cell(x, y float64) (col, row int, ok bool) {
	cols, rows := c.screen.Size()
	tankRows := rows - hudRows
	if cols <= 0 || tankRows <= 0 || c.tankW <= 0 || c.tankH <= 0 {
		return 0, 0, false
	}
	col = clampInt(int(x/c.tankW*float64(cols)), 0, cols-1)
	row = hudRows + clampInt(int(y/c.tankH*float64(tankRows)), 0, tankRows-1)
	return col, row, true
}

// DrawSprite puts the sprite's glyph in the cell under (x, y).
func (c *Canvas) DrawSprite(s components.Sprite, x, y float64, tint components.Tint) {
	col, row, ok := c.Cell(x, y)
	if !ok {
		return
	}
	g, found := c.glyphs[s.Texture]
	if !found {
		g = Glyph{Rune: '?', Color: tcell.ColorWhite}
	}
	r := g.Rune
	if s.Flipped {
		if m, ok := mirrored[r]; ok {
			r = m
		}
	}
	style := tcell.StyleDefault.Foreground(g.Color)
	if tint != components.TintNone {
		style = style.Foreground(rgb(tint)).Bold(true)
	}
	c.screen.SetContent(col, row, r, nil, style)
}

// DrawHUD writes the status line on the top row.
func (c *Canvas) DrawHUD(h scene.HUD, status string) {
	line := fmt.Sprintf(" Score %d  Power %d  Lives %d  Level %d", h.Score, h.Power, h.Lives, h.Level)
	if h.PoweredUp {
		line += "  POWER-UP"
	}
	if status != "" {
		line += "  " + status
	}

	style := tcell.StyleDefault.Reverse(true)
	if h.PoweredUp {
		style = style.Foreground(tcell.ColorYellow)
	}
	cols, _ := c.screen.Size()
	col := 0
	for _, r := range line {
		if col >= cols {
			break
		}
		c.screen.SetContent(col, 0, r, nil, style)
		col++
	}
	for ; col < cols; col++ {
		c.screen.SetContent(col, 0, ' ', nil, style)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
