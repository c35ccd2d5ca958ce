package game

import "github.com/pthm-cable/aquarium/telemetry"

// step advances the scene one frame and flushes telemetry when a window
// closes. Autopilot steering replaces player input when enabled.
func (g *Game) step() {
	if g.opts.Autopilot {
		g.perfCollector.StartPhase(telemetry.PhaseInput)
		p := g.scene.Player()
		p.SetDirection(g.autopilot.Steer(p, g.scene.Aquarium().Creatures()))
	}

	g.recorder.SetTick(g.tick)
	g.scene.Update()
	g.tick++

	if g.effects != nil {
		g.perfCollector.StartPhase(telemetry.PhaseDraw)
		g.effects.Update()
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
}

// UpdateHeadless runs one frame without input or drawing. It does nothing
// once the scene is over.
func (g *Game) UpdateHeadless() {
	if g.Over() {
		return
	}
	g.perfCollector.StartTick()
	g.step()
	g.perfCollector.EndTick()
}

// Step runs one frame unless paused. Used by hosts that handle their own
// input and drawing.
func (g *Game) Step() {
	if g.paused {
		return
	}
	g.UpdateHeadless()
}
