package terminal

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/aquarium/scene"
)

// Session is the game the host drives.
type Session interface {
	Scene() *scene.Scene
	Step()
	Restart() error
	Over() bool
	Paused() bool
	SetPaused(bool)
}

// Host runs a session on a tcell screen.
type Host struct {
	screen  tcell.Screen
	session Session
	canvas  *Canvas
	frame   time.Duration
}

// NewHost creates a host that steps the session once per frame.
func NewHost(screen tcell.Screen, session Session, canvas *Canvas, frame time.Duration) *Host {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	return &Host{screen: screen, session: session, canvas: canvas, frame: frame}
}

// Run loops until quit is pressed or ctx is done. The screen must already
// be initialized; the caller finalizes it.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(h.frame)
	defer ticker.Stop()

	h.screen.HideCursor()
	h.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			h.session.Step()
			h.draw()
		}
	}
}

// handle applies one event and reports whether the host should stop.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		cmd := Translate(ev)
		switch cmd.Action {
		case ActionQuit:
			return true
		case ActionPause:
			h.session.SetPaused(!h.session.Paused())
		case ActionRestart:
			if err := h.session.Restart(); err != nil {
				slog.Error("restart failed", "error", err)
			}
		case ActionSteer:
			h.session.Scene().Player().SetDirection(cmd.DX, cmd.DY)
		}
	}
	return false
}

func (h *Host) draw() {
	h.screen.Clear()
	s := h.session.Scene()
	s.Draw(h.canvas)

	status := ""
	switch {
	case h.session.Over():
		status = "GAME OVER - r restart, q quit"
	case h.session.Paused():
		status = "PAUSED"
	}
	h.canvas.DrawHUD(s.HUD(), status)
	h.screen.Show()
}
