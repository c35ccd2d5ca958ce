// Package ui draws the raylib heads-up display and game overlays.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBorder   rl.Color
	OverlayBg     rl.Color
	TextColor     rl.Color
	PoweredText   rl.Color
	LifePip       rl.Color
	Padding       int32
	LineHeight    int32
	FontSize      int32
	TitleFontSize int32
	PipRadius     float32
	PipSpacing    int32
	ButtonWidth   float32
	ButtonHeight  float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBorder:   rl.Color{R: 255, G: 255, B: 255, A: 200},
		OverlayBg:     rl.Color{R: 0, G: 0, B: 0, A: 160},
		TextColor:     rl.White,
		PoweredText:   rl.Yellow,
		LifePip:       rl.Color{R: 255, G: 50, B: 50, A: 255},
		Padding:       10,
		LineHeight:    15,
		FontSize:      14,
		TitleFontSize: 40,
		PipRadius:     5,
		PipSpacing:    20,
		ButtonWidth:   140,
		ButtonHeight:  32,
	}
}
