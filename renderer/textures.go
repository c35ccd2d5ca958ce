// Package renderer draws the tank with raylib.
package renderer

import (
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/components"
)

// TextureSpec names the image for one texture ID and the color drawn when
// the image is missing.
type TextureSpec struct {
	File  string
	Color components.Tint
}

// Textures is the read-only texture table shared by every sprite. It
// implements aquarium.Drawer.
type Textures struct {
	textures map[components.TextureID]rl.Texture2D
	colors   map[components.TextureID]rl.Color
}

// LoadTextures loads every spec from dir. Missing files are logged and drawn
// as colored ellipses. Must be called after the raylib window is created.
func LoadTextures(dir string, specs map[components.TextureID]TextureSpec) *Textures {
	t := &Textures{
		textures: make(map[components.TextureID]rl.Texture2D, len(specs)),
		colors:   make(map[components.TextureID]rl.Color, len(specs)),
	}
	for id, spec := range specs {
		t.colors[id] = toColor(spec.Color)
		if spec.File == "" {
			continue
		}
		path := filepath.Join(dir, spec.File)
		if _, err := os.Stat(path); err != nil {
			slog.Warn("sprite missing, using placeholder", "path", path)
			continue
		}
		t.textures[id] = rl.LoadTexture(path)
	}
	return t
}

// DrawSprite draws s centered at (x, y), mirrored when flipped.
func (t *Textures) DrawSprite(s components.Sprite, x, y float64, tint components.Tint) {
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	w := s.Width * scale
	h := s.Height * scale

	tex, ok := t.textures[s.Texture]
	if !ok {
		t.drawPlaceholder(s, float32(x), float32(y), w, h, tint)
		return
	}

	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	if s.Flipped {
		src.Width = -src.Width
	}
	dst := rl.Rectangle{X: float32(x), Y: float32(y), Width: w, Height: h}
	origin := rl.Vector2{X: w / 2, Y: h / 2}
	rl.DrawTexturePro(tex, src, dst, origin, 0, toColor(tint))
}

// drawPlaceholder draws an ellipse body with a tail on the trailing side.
func (t *Textures) drawPlaceholder(s components.Sprite, x, y, w, h float32, tint components.Tint) {
	color, ok := t.colors[s.Texture]
	if !ok {
		color = rl.LightGray
	}
	if tint != components.TintNone {
		color = toColor(tint)
	}

	tail := float32(1)
	if s.Flipped {
		tail = -1
	}
	tx := x - tail*w/2
	a := rl.Vector2{X: tx, Y: y}
	b := rl.Vector2{X: tx - tail*w/4, Y: y + h/4}
	c := rl.Vector2{X: tx - tail*w/4, Y: y - h/4}
	// Only the counter-clockwise winding is rasterized.
	rl.DrawTriangle(a, b, c, color)
	rl.DrawTriangle(a, c, b, color)
	rl.DrawEllipse(int32(x), int32(y), w/2.5, h/4, color)
}

// Unload frees every texture.
func (t *Textures) Unload() {
	for id, tex := range t.textures {
		rl.UnloadTexture(tex)
		delete(t.textures, id)
	}
}

func toColor(t components.Tint) rl.Color {
	return rl.Color{R: t.R, G: t.G, B: t.B, A: t.A}
}
