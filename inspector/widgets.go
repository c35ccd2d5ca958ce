package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Widget colors
var (
	ColorBarBg       = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorBarFill     = rl.Color{R: 100, G: 180, B: 100, A: 255}
	ColorBarLow      = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorText        = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim     = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorAngleBg     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorAngleNeedle = rl.Color{R: 255, G: 200, B: 100, A: 255}
	ColorBoolOn      = rl.Color{R: 100, G: 200, B: 100, A: 255}
	ColorBoolOff     = rl.Color{R: 200, G: 90, B: 90, A: 255}
)

const labelWidth = 80

// DrawLabel renders "name: value" and returns the row height.
func DrawLabel(x, y int32, name string, value any, options map[string]string) int32 {
	text := FormatValue(value, options["fmt"])
	rl.DrawText(fmt.Sprintf("%s: %s", name, text), x, y, 16, ColorText)
	return 20
}

// DrawBar renders a horizontal bar filled to value/max.
func DrawBar(x, y int32, name string, value float64, options map[string]string) int32 {
	ratio := Ratio(value, GetMax(options))
	barWidth := int32(120)
	barHeight := int32(14)

	rl.DrawText(name, x, y, 14, ColorTextDim)

	barX := x + labelWidth
	rl.DrawRectangle(barX, y, barWidth, barHeight, ColorBarBg)
	fill := ColorBarFill
	if ratio < 0.3 {
		fill = ColorBarLow
	}
	rl.DrawRectangle(barX, y, int32(float64(barWidth)*ratio), barHeight, fill)
	rl.DrawText(FormatValue(value, options["fmt"]), barX+barWidth+5, y, 14, ColorTextDim)
	return 18
}

// DrawAngle renders a compass needle for an angle in radians.
func DrawAngle(x, y int32, name string, radians float64) int32 {
	size := int32(40)
	cx := x + labelWidth + size/2
	cy := y + size/2

	rl.DrawText(name, x, y+size/2-7, 14, ColorTextDim)
	rl.DrawCircle(cx, cy, float32(size/2), ColorAngleBg)
	rl.DrawCircleLines(cx, cy, float32(size/2), ColorTextDim)

	needle := float64(size/2 - 4)
	rl.DrawLineEx(
		rl.Vector2{X: float32(cx), Y: float32(cy)},
		rl.Vector2{
			X: float32(float64(cx) + needle*math.Cos(radians)),
			Y: float32(float64(cy) + needle*math.Sin(radians)),
		},
		2,
		ColorAngleNeedle,
	)
	rl.DrawText(fmt.Sprintf("%.0f deg", radians*180/math.Pi), cx+size/2+5, y+size/2-7, 14, ColorTextDim)
	return size + 4
}

// DrawBool renders a yes/no indicator.
func DrawBool(x, y int32, name string, value bool) int32 {
	rl.DrawText(name, x, y, 14, ColorTextDim)

	ix := x + labelWidth
	size := int32(14)
	color, text := ColorBoolOff, "NO"
	if value {
		color, text = ColorBoolOn, "YES"
	}
	rl.DrawRectangle(ix, y, size, size, color)
	rl.DrawText(text, ix+size+5, y, 14, color)
	return 18
}

// DrawField renders a field with its widget and returns the row height.
func DrawField(x, y int32, f Field) int32 {
	switch f.Widget {
	case WidgetBar:
		if v, ok := FloatValue(f.Value); ok {
			return DrawBar(x, y, f.Name, v, f.Options)
		}
	case WidgetAngle:
		if v, ok := FloatValue(f.Value); ok {
			return DrawAngle(x, y, f.Name, v)
		}
	case WidgetBool:
		if v, ok := f.Value.(bool); ok {
			return DrawBool(x, y, f.Name, v)
		}
	}
	return DrawLabel(x, y, f.Name, f.Value, f.Options)
}

// FieldHeight returns the row height DrawField uses for f.
func FieldHeight(f Field) int32 {
	_, numeric := FloatValue(f.Value)
	_, isBool := f.Value.(bool)
	switch {
	case f.Widget == WidgetBar && numeric:
		return 18
	case f.Widget == WidgetAngle && numeric:
		return 44
	case f.Widget == WidgetBool && isBool:
		return 18
	}
	return 20
}
