package renderer

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WaterBackground renders the animated tank water over the tank rectangle.
// Without the shader file it falls back to a vertical gradient.
type WaterBackground struct {
	shaderPath    string
	shader        rl.Shader
	timeLoc       int32
	resolutionLoc int32
	width         float32
	height        float32
	initialized   bool
	hasShader     bool
}

// NewWaterBackground creates a new water background renderer.
func NewWaterBackground(assetsDir string, width, height int32) *WaterBackground {
	return &WaterBackground{
		shaderPath: filepath.Join(assetsDir, "shaders", "water.fs"),
		width:      float32(width),
		height:     float32(height),
	}
}

// Init loads the shader. Must be called after the raylib window is created.
func (w *WaterBackground) Init() {
	if w.initialized {
		return
	}
	w.initialized = true

	if _, err := os.Stat(w.shaderPath); err != nil {
		return
	}
	w.shader = rl.LoadShader("", w.shaderPath)
	w.timeLoc = rl.GetShaderLocation(w.shader, "time")
	w.resolutionLoc = rl.GetShaderLocation(w.shader, "resolution")
	w.hasShader = true
	w.setResolution()
}

func (w *WaterBackground) setResolution() {
	if !w.hasShader {
		return
	}
	rl.SetShaderValue(w.shader, w.resolutionLoc, []float32{w.width, w.height}, rl.ShaderUniformVec2)
}

// Draw renders the water. seconds drives the animation.
func (w *WaterBackground) Draw(seconds float32) {
	if !w.initialized {
		w.Init()
	}

	if !w.hasShader {
		rl.DrawRectangleGradientV(0, 0, int32(w.width), int32(w.height),
			rl.Color{R: 40, G: 120, B: 190, A: 255},
			rl.Color{R: 10, G: 40, B: 90, A: 255})
		return
	}

	rl.SetShaderValue(w.shader, w.timeLoc, []float32{seconds}, rl.ShaderUniformFloat)
	rl.BeginShaderMode(w.shader)
	rl.DrawRectangle(0, 0, int32(w.width), int32(w.height), rl.White)
	rl.EndShaderMode()
}

// Unload frees resources.
func (w *WaterBackground) Unload() {
	if w.hasShader {
		rl.UnloadShader(w.shader)
		w.hasShader = false
	}
	w.initialized = false
}
