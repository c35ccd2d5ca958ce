// Package inspector shows a panel describing the creature under the mouse.
package inspector

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/aquarium"
	"github.com/pthm-cable/aquarium/systems"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 30
	panelTop     = 40
	closeSize    = 20
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorEdible      = rl.Color{R: 100, G: 220, B: 120, A: 255}
	ColorDangerous   = rl.Color{R: 230, G: 80, B: 80, A: 255}
)

// Details is what the panel lists for a creature.
type Details struct {
	Kind    string  `inspect:"label"`
	Value   int     `inspect:"label"`
	Edible  bool    `inspect:"bool"`
	Speed   float64 `inspect:"bar,max:40,fmt:%.1f"`
	Heading float64 `inspect:"angle"`
	Radius  float64 `inspect:"label,fmt:%.0f"`
	X       float64 `inspect:"label,fmt:%.0f"`
	Y       float64 `inspect:"label,fmt:%.0f"`
}

// Describe summarizes c as seen by a player with the given power.
func Describe(c aquarium.Creature, playerPower int) Details {
	return Details{
		Kind:    c.Kind.String(),
		Value:   c.Value,
		Edible:  playerPower >= c.Value,
		Speed:   systems.EffectiveSpeed(c.Kind, c.Motion.Speed),
		Heading: math.Atan2(c.Motion.DY, c.Motion.DX),
		Radius:  c.Radius,
		X:       c.Position.X,
		Y:       c.Position.Y,
	}
}

// Inspector tracks the selected creature and where its panel sits.
type Inspector struct {
	selected    ecs.Entity
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector creates an inspector whose panel hugs the right edge.
func NewInspector(screenWidth int32) *Inspector {
	ins := &Inspector{panelY: panelTop}
	ins.Resize(screenWidth)
	return ins
}

// Resize moves the panel after a window resize.
func (ins *Inspector) Resize(screenWidth int32) {
	ins.panelX = screenWidth - PanelWidth - 10
}

// HandleClick processes a left click at screen (sx, sy), which maps to
// tank point (wx, wy). Clicks on the panel never reach the tank. It
// reports whether the click was consumed.
func (ins *Inspector) HandleClick(sx, sy int32, wx, wy float64, tank *aquarium.Aquarium) bool {
	if ins.hasSelected {
		if ins.onClose(sx, sy) {
			ins.Deselect()
			return true
		}
		if ins.onPanel(sx, sy, tank) {
			return true
		}
	}
	return ins.Select(tank, wx, wy)
}

// Select picks the creature at tank point (wx, wy). A miss leaves the
// selection unchanged.
func (ins *Inspector) Select(tank *aquarium.Aquarium, wx, wy float64) bool {
	c, ok := tank.Pick(wx, wy)
	if !ok {
		return false
	}
	ins.selected = c.Entity
	ins.hasSelected = true
	return true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns a fresh snapshot of the selected creature. A creature
// that left the tank clears the selection.
func (ins *Inspector) Selected(tank *aquarium.Aquarium) (aquarium.Creature, bool) {
	if !ins.hasSelected {
		return aquarium.Creature{}, false
	}
	c, ok := tank.Lookup(ins.selected)
	if !ok {
		ins.Deselect()
	}
	return c, ok
}

func (ins *Inspector) onClose(sx, sy int32) bool {
	x := ins.panelX + PanelWidth - closeSize - 5
	y := ins.panelY + 5
	return sx >= x && sx <= x+closeSize && sy >= y && sy <= y+closeSize
}

func (ins *Inspector) onPanel(sx, sy int32, tank *aquarium.Aquarium) bool {
	c, ok := ins.Selected(tank)
	if !ok {
		return false
	}
	h := panelHeight(ExtractFields(Describe(c, 0)))
	return sx >= ins.panelX && sx <= ins.panelX+PanelWidth &&
		sy >= ins.panelY && sy <= ins.panelY+h
}

func panelHeight(fields []Field) int32 {
	h := int32(HeaderHeight + 2*PanelPadding)
	for _, f := range fields {
		h += FieldHeight(f)
	}
	return h
}

// DrawHighlight rings the selected creature. Call inside the tank's 2D
// camera mode.
func (ins *Inspector) DrawHighlight(tank *aquarium.Aquarium, playerPower int) {
	c, ok := ins.Selected(tank)
	if !ok {
		return
	}
	color := ColorDangerous
	if playerPower >= c.Value {
		color = ColorEdible
	}
	x, y := int32(c.Position.X), int32(c.Position.Y)
	r := float32(c.Radius)
	rl.DrawCircleLines(x, y, r+3, color)
	rl.DrawCircleLines(x, y, r+4, color)
}

// Draw renders the panel for the selected creature, if any.
func (ins *Inspector) Draw(tank *aquarium.Aquarium, playerPower int) {
	c, ok := ins.Selected(tank)
	if !ok {
		return
	}
	d := Describe(c, playerPower)
	fields := ExtractFields(d)
	h := panelHeight(fields)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, h, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(h)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(d.Kind, ins.panelX+PanelPadding, ins.panelY+7, 18, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - closeSize - 5
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, closeSize, closeSize, ColorCloseBtn)
	rl.DrawText("x", closeX+6, closeY+2, 16, ColorHeaderText)

	y := ins.panelY + HeaderHeight + PanelPadding
	for _, f := range fields {
		y += DrawField(ins.panelX+PanelPadding, y, f)
	}
}
