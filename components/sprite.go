package components

// TextureID indexes the immutable texture-definition table owned by the
// renderer. Sprites share textures by ID and never mutate them.
type TextureID uint8

// Sprite is the per-creature drawable state. It is a value type: every
// creature holds its own flip and scale.
type Sprite struct {
	Texture TextureID
	Width   float32
	Height  float32
	Scale   float32
	Flipped bool
}

// Tint is an RGBA color modifier applied when drawing.
type Tint struct {
	R, G, B, A uint8
}

// Common tints.
var (
	TintNone   = Tint{255, 255, 255, 255}
	TintDamage = Tint{230, 41, 55, 255}
	TintPower  = Tint{253, 249, 0, 255}
)
