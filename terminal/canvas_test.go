package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/scene"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestCanvasCell(t *testing.T) {
	s := newScreen(t, 80, 25)
	c := NewCanvas(s, 1280, 720, nil)

	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"origin", 0, 0, 0, 1},
		{"center", 640, 360, 40, 13},
		{"far corner clamps", 1280, 720, 79, 24},
		{"negative clamps", -50, -50, 0, 1},
		{"one cell in", 16, 30, 1, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row, ok := c.Cell(tc.x, tc.y)
			if !ok {
				t.Fatal("Cell reported no room")
			}
			if col != tc.col || row != tc.row {
				t.Errorf("Cell(%v, %v) = (%d, %d), want (%d, %d)", tc.x, tc.y, col, row, tc.col, tc.row)
			}
		})
	}
}

func TestCanvasCellNoRoom(t *testing.T) {
	s := newScreen(t, 80, 1)
	c := NewCanvas(s, 1280, 720, nil)
	if _, _, ok := c.Cell(10, 10); ok {
		t.Error("a screen with only the HUD row has no tank cells")
	}
}

func TestDrawSpriteGlyphAndFlip(t *testing.T) {
	s := newScreen(t, 80, 25)
	glyphs := map[components.TextureID]Glyph{
		1: {Rune: '>', Color: tcell.ColorBlue},
	}
	c := NewCanvas(s, 1280, 720, glyphs)

	c.DrawSprite(components.Sprite{Texture: 1}, 640, 360, components.TintNone)
	if r, _, style, _ := s.GetContent(40, 13); r != '>' {
		t.Errorf("rune = %q, want '>'", r)
	} else if fg, _, _ := style.Decompose(); fg != tcell.ColorBlue {
		t.Errorf("foreground = %v, want blue", fg)
	}

	c.DrawSprite(components.Sprite{Texture: 1, Flipped: true}, 0, 0, components.TintNone)
	if r, _, _, _ := s.GetContent(0, 1); r != '<' {
		t.Errorf("flipped rune = %q, want '<'", r)
	}

	c.DrawSprite(components.Sprite{Texture: 9}, 16, 30, components.TintNone)
	if r, _, _, _ := s.GetContent(1, 2); r != '?' {
		t.Errorf("unknown texture rune = %q, want '?'", r)
	}
}

func TestDrawSpriteTint(t *testing.T) {
	s := newScreen(t, 80, 25)
	c := NewCanvas(s, 1280, 720, map[components.TextureID]Glyph{0: {Rune: '@', Color: tcell.ColorWhite}})

	c.DrawSprite(components.Sprite{}, 640, 360, components.TintDamage)
	_, _, style, _ := s.GetContent(40, 13)
	fg, _, attrs := style.Decompose()
	if fg != rgb(components.TintDamage) {
		t.Errorf("foreground = %v, want damage tint", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("tinted glyph should be bold")
	}
}

func TestDrawHUD(t *testing.T) {
	s := newScreen(t, 60, 10)
	c := NewCanvas(s, 1280, 720, nil)
	c.DrawHUD(scene.HUD{Score: 12, Power: 2, Lives: 3, Level: 2}, "PAUSED")

	var got []rune
	for col := 0; col < 60; col++ {
		r, _, _, _ := s.GetContent(col, 0)
		got = append(got, r)
	}
	want := " Score 12  Power 2  Lives 3  Level 2  PAUSED"
	if string(got[:len(want)]) != want {
		t.Errorf("HUD = %q, want prefix %q", string(got), want)
	}
}

func TestGlyphsFromConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	glyphs := GlyphsFromConfig(cfg)

	if g := glyphs[components.TextureID(components.KindPlayer)]; g.Rune != '@' {
		t.Errorf("player glyph = %q, want '@'", g.Rune)
	}
	if g := glyphs[components.TextureID(components.KindBiggerFish)]; g.Rune != 'B' {
		t.Errorf("BiggerFish glyph = %q, want 'B'", g.Rune)
	}
	if len(glyphs) != len(components.NPCKinds())+1 {
		t.Errorf("got %d glyphs, want one per kind plus the player", len(glyphs))
	}
}
