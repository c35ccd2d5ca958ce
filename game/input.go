package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	g.handleCameraInput()

	if g.Over() {
		if rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyEnter) {
			g.restartOrLog()
		}
		return
	}

	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.handleInspectorInput()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.opts.Autopilot = !g.opts.Autopilot
	}
	if g.paused || g.opts.Autopilot {
		return
	}

	g.scene.Player().SetDirection(steering())
}

// steering reads the held arrow and WASD keys as a heading.
func steering() (float64, float64) {
	var dx, dy float64
	if rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD) {
		dx++
	}
	if rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA) {
		dx--
	}
	if rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS) {
		dy++
	}
	if rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW) {
		dy--
	}
	return dx, dy
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.camera != nil {
		g.camera.Resize(float32(w), float32(h))
	}
	if g.inspector != nil {
		g.inspector.Resize(w)
	}
}

// handleInspectorInput selects the clicked creature; right click clears.
func (g *Game) handleInspectorInput() {
	if g.inspector == nil {
		return
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.inspector.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	mouse := rl.GetMousePosition()
	wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
	g.inspector.HandleClick(int32(mouse.X), int32(mouse.Y), float64(wx), float64(wy), g.scene.Aquarium())
}

// handleCameraInput processes zoom controls. Zoomed in, the camera follows
// the player.
func (g *Game) handleCameraInput() {
	if g.camera == nil {
		return
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
