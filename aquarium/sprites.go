package aquarium

import "github.com/pthm-cable/aquarium/components"

// SpriteProvider hands out sprite state per creature kind. Each call returns
// an independent copy, so flipping one creature never affects another.
type SpriteProvider interface {
	GetSprite(k components.Kind) (components.Sprite, bool)
}

// SpriteTable is a SpriteProvider backed by a fixed prototype per kind.
type SpriteTable map[components.Kind]components.Sprite

// GetSprite returns a copy of the prototype for k.
func (t SpriteTable) GetSprite(k components.Kind) (components.Sprite, bool) {
	s, ok := t[k]
	return s, ok
}

// Drawer draws a sprite centered at (x, y).
type Drawer interface {
	DrawSprite(s components.Sprite, x, y float64, tint components.Tint)
}
