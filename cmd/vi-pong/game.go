package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
)

// game owns the simulation and drives it from a single goroutine
type game struct {
	state    *engine.State
	screen   tcell.Screen
	surface  *render.TerminalSurface
	renderer *render.Renderer
	machine  *input.Machine
	interval time.Duration
}

func newGame(state *engine.State, screen tcell.Screen, palette render.Palette, interval time.Duration) *game {
	return &game{
		state:    state,
		screen:   screen,
		surface:  render.NewTerminalSurface(screen, state.Config.SurfaceWidth, state.Config.SurfaceHeight),
		renderer: render.NewRenderer(palette),
		machine:  input.NewMachine(),
		interval: interval,
	}
}

// run blocks until a quit intent; the poller goroutine only forwards events
func (g *game) run() {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	g.renderer.Render(g.state, g.surface)

	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.frame()
		}
	}
}

// handleEvent applies one input event between frames, returns false to exit
func (g *game) handleEvent(ev tcell.Event) bool {
	intent := g.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		g.surface.Resize()
		g.screen.Sync()
		cols, rows := g.surface.Cells()
		log.Printf("resize: %dx%d", cols, rows)
	case input.IntentPointer:
		engine.TrackPointer(g.state, g.surface.ToSurfaceY(intent.Row))
	case input.IntentNudge:
		engine.NudgePointer(g.state, float64(intent.Steps)*constants.PaddleNudge)
	}
	return true
}

// frame runs opponent, physics and rendering in that order
func (g *game) frame() {
	engine.Step(g.state)
	logEvents(g.state)
	g.renderer.Render(g.state, g.surface)
}

func logEvents(s *engine.State) {
	switch {
	case s.Events.Has(engine.EventLeftScored):
		log.Printf("frame %d: left scores, %d-%d", s.Frame, s.Score.Left, s.Score.Right)
	case s.Events.Has(engine.EventRightScored):
		log.Printf("frame %d: right scores, %d-%d", s.Frame, s.Score.Left, s.Score.Right)
	}
}
