package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/inspector"
	"github.com/pthm-cable/aquarium/renderer"
	"github.com/pthm-cable/aquarium/telemetry"
	"github.com/pthm-cable/aquarium/ui"
)

const controlsLegend = "Arrows/WASD move  Space pause  Tab autopilot  +/- zoom  Home reset view  Click inspect  F11 fullscreen"

// initRendering loads textures and builds the UI. Requires a raylib window.
func (g *Game) initRendering() {
	tankW, tankH := float32(g.cfg.Derived.TankW), float32(g.cfg.Derived.TankH)
	g.camera = camera.New(float32(g.screenWidth), float32(g.screenHeight), tankW, tankH)
	g.textures = renderer.LoadTextures(g.cfg.Assets.Dir, textureSpecs(g.cfg))
	g.water = renderer.NewWaterBackground(g.cfg.Assets.Dir, int32(tankW), int32(tankH))
	g.hud = ui.NewHUD()
	g.gameOverView = ui.NewGameOverOverlay()
	g.pausePanel = ui.NewPausePanel()
	g.inspector = inspector.NewInspector(g.screenWidth)
}

// textureSpecs lists the image and fallback color for every texture ID.
// Texture IDs match creature kinds.
func textureSpecs(cfg *config.Config) map[components.TextureID]renderer.TextureSpec {
	specs := make(map[components.TextureID]renderer.TextureSpec, len(cfg.Derived.Kinds)+1)
	specs[components.TextureID(components.KindPlayer)] = renderer.TextureSpec{
		File:  cfg.Player.Sprite,
		Color: cfg.Derived.PlayerTint,
	}
	for k, cc := range cfg.Derived.Kinds {
		color, err := config.ParseColor(cc.Color)
		if err != nil {
			slog.Warn("bad creature color", "kind", k, "error", err)
		}
		specs[components.TextureID(k)] = renderer.TextureSpec{File: cc.Sprite, Color: color}
	}
	return specs
}

// Update reads input and advances the scene one frame.
func (g *Game) Update() {
	g.perfCollector.StartTick()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	if !g.paused && !g.Over() {
		g.step()
	}
}

// Draw renders the tank, the HUD and any overlay, and closes the frame's
// perf sample.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseDraw)
	seconds := float64(g.tick) * g.cfg.Timing.DT

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	if g.camera.Zoomed() {
		pos := g.scene.Player().Position()
		g.camera.Follow(float32(pos.X), float32(pos.Y))
	}
	rl.BeginMode2D(rl.Camera2D{
		Offset: rl.Vector2{X: g.camera.ViewportW / 2, Y: g.camera.ViewportH / 2},
		Target: rl.Vector2{X: g.camera.X, Y: g.camera.Y},
		Zoom:   g.camera.Zoom,
	})
	g.water.Draw(float32(seconds))
	g.scene.Draw(g.textures)
	power := g.scene.Player().Power()
	g.inspector.DrawHighlight(g.scene.Aquarium(), power)
	renderer.DrawParticles(g.effects)
	rl.EndMode2D()

	hud := g.scene.HUD()
	g.hud.Draw(hud, g.screenWidth, seconds)
	g.hud.DrawControls(g.screenHeight, controlsLegend)
	g.inspector.Draw(g.scene.Aquarium(), power)

	switch {
	case g.Over():
		if g.gameOverView.Draw(hud, g.screenWidth, g.screenHeight) {
			g.restartOrLog()
		}
	case g.paused:
		g.drawPausePanel()
	}

	rl.EndDrawing()

	g.perfCollector.EndTick()
	g.perfCollector.RecordFrame()
}

func (g *Game) drawPausePanel() {
	volume := g.cfg.Audio.Volume
	if g.sound != nil {
		volume = g.sound.Volume()
	}
	newVolume, resume := g.pausePanel.Draw(volume, g.screenWidth, g.screenHeight)
	if g.sound != nil && newVolume != volume {
		g.sound.SetVolume(newVolume)
	}
	if resume {
		g.paused = false
	}
}

func (g *Game) restartOrLog() {
	if err := g.Restart(); err != nil {
		slog.Error("restart failed", "error", err)
	}
}
