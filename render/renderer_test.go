package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/vmath"
)

type rectOp struct {
	x, y, w, h float64
	color      tcell.Color
}

type circleOp struct {
	cx, cy, r float64
	color     tcell.Color
}

type textOp struct {
	text  string
	cx, y float64
	color tcell.Color
}

// recordingSurface captures draw calls in logical units
type recordingSurface struct {
	cleared tcell.Color
	rects   []rectOp
	circles []circleOp
	texts   []textOp
	shown   int
}

func (r *recordingSurface) Size() (float64, float64) { return 800, 400 }
func (r *recordingSurface) Clear(bg tcell.Color)     { r.cleared = bg }
func (r *recordingSurface) Show()                    { r.shown++ }

func (r *recordingSurface) FillRect(x, y, w, h float64, color tcell.Color) {
	r.rects = append(r.rects, rectOp{x, y, w, h, color})
}

func (r *recordingSurface) FillCircle(cx, cy, rad float64, color tcell.Color) {
	r.circles = append(r.circles, circleOp{cx, cy, rad, color})
}

func (r *recordingSurface) DrawText(text string, cx, y float64, color tcell.Color) {
	r.texts = append(r.texts, textOp{text, cx, y, color})
}

var testPalette = Palette{
	Foreground: tcell.NewRGBColor(255, 255, 255),
	Net:        tcell.NewRGBColor(204, 204, 204),
	Background: tcell.NewRGBColor(0, 0, 0),
	Flash:      tcell.NewRGBColor(255, 165, 0),
}

func newRenderState() *engine.State {
	s := engine.NewState(engine.DefaultConfig(), vmath.NewFastRand(1))
	s.Player.Y = 100
	s.Opponent.Y = 200
	s.Ball = engine.Ball{X: 393, Y: 193}
	s.Score = engine.Score{Left: 3, Right: 11}
	return s
}

func TestRendererDrawsFrame(t *testing.T) {
	s := newRenderState()
	surf := &recordingSurface{}

	NewRenderer(testPalette).Render(s, surf)

	if surf.cleared != testPalette.Background {
		t.Errorf("cleared with %v, want background", surf.cleared)
	}
	if surf.shown != 1 {
		t.Errorf("Show called %d times, want 1", surf.shown)
	}

	var net, paddles []rectOp
	for _, op := range surf.rects {
		switch op.color {
		case testPalette.Net:
			net = append(net, op)
		case testPalette.Foreground:
			paddles = append(paddles, op)
		}
	}

	// 400 / 30 → dashes at 0, 30, ..., 390
	if len(net) != 14 {
		t.Errorf("net dashes = %d, want 14", len(net))
	}
	for _, d := range net {
		if d.x != 398 || d.w != constants.NetDashWidth || d.h != constants.NetDashLength {
			t.Errorf("net dash %+v misplaced", d)
		}
	}

	if len(paddles) != 2 {
		t.Fatalf("paddles = %d, want 2", len(paddles))
	}
	if want := (rectOp{20, 100, 12, 80, testPalette.Foreground}); paddles[0] != want {
		t.Errorf("left paddle = %+v, want %+v", paddles[0], want)
	}
	if want := (rectOp{768, 200, 12, 80, testPalette.Foreground}); paddles[1] != want {
		t.Errorf("right paddle = %+v, want %+v", paddles[1], want)
	}

	if len(surf.circles) != 1 {
		t.Fatalf("circles = %d, want 1", len(surf.circles))
	}
	if want := (circleOp{400, 200, 7, testPalette.Foreground}); surf.circles[0] != want {
		t.Errorf("ball = %+v, want %+v", surf.circles[0], want)
	}

	wantTexts := []textOp{
		{"3", 350, constants.ScoreBaselineY, testPalette.Foreground},
		{"11", 450, constants.ScoreBaselineY, testPalette.Foreground},
	}
	if len(surf.texts) != len(wantTexts) {
		t.Fatalf("texts = %d, want %d", len(surf.texts), len(wantTexts))
	}
	for i, want := range wantTexts {
		if surf.texts[i] != want {
			t.Errorf("text[%d] = %+v, want %+v", i, surf.texts[i], want)
		}
	}
}

func TestRendererFlashesBallOnPaddleHit(t *testing.T) {
	tests := []struct {
		name   string
		events engine.Event
		want   tcell.Color
	}{
		{"No event", 0, testPalette.Foreground},
		{"Wall only", engine.EventWallHit, testPalette.Foreground},
		{"Left hit", engine.EventLeftPaddleHit, testPalette.Flash},
		{"Right hit", engine.EventRightPaddleHit, testPalette.Flash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRenderState()
			s.Events = tt.events
			surf := &recordingSurface{}

			NewRenderer(testPalette).Render(s, surf)

			if got := surf.circles[0].color; got != tt.want {
				t.Errorf("ball color = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRendererDoesNotMutateState(t *testing.T) {
	s := newRenderState()
	before := *s

	NewRenderer(testPalette).Render(s, &recordingSurface{})

	if s.Ball != before.Ball || s.Player != before.Player || s.Opponent != before.Opponent || s.Score != before.Score {
		t.Error("Render changed simulation state")
	}
}

// TestRendererOnTerminal renders a full frame onto a simulation screen
func TestRendererOnTerminal(t *testing.T) {
	screen, surf := newSimSurface(t)
	s := newRenderState()

	NewRenderer(testPalette).Render(s, surf)

	// Left paddle at y=100..180 → rows 6-10, cols 2-3
	mainc, _, style, _ := screen.GetContent(2, 8)
	if mainc != constants.FillChar {
		t.Errorf("left paddle cell = %q, want fill char", mainc)
	}
	if fg, bg, _ := style.Decompose(); fg != testPalette.Foreground || bg != testPalette.Background {
		t.Errorf("left paddle style fg=%v bg=%v", fg, bg)
	}

	// Ball center cell
	if mainc, _, _, _ := screen.GetContent(40, 12); mainc != constants.FillChar {
		t.Errorf("ball cell = %q, want fill char", mainc)
	}
}
