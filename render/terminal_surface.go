package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-pong/constants"
)

// TerminalSurface maps the logical playfield onto a tcell screen, stretching each axis to fill the terminal
type TerminalSurface struct {
	screen tcell.Screen
	width  float64
	height float64
	cols   int
	rows   int
	bg     tcell.Color
}

// NewTerminalSurface wraps screen with a logical size of width x height
func NewTerminalSurface(screen tcell.Screen, width, height float64) *TerminalSurface {
	s := &TerminalSurface{
		screen: screen,
		width:  width,
		height: height,
		bg:     tcell.ColorBlack,
	}
	s.Resize()
	return s
}

// Resize re-reads the terminal dimensions; the logical size never changes
func (s *TerminalSurface) Resize() {
	s.cols, s.rows = s.screen.Size()
}

func (s *TerminalSurface) Size() (float64, float64) {
	return s.width, s.height
}

// Cells returns the current terminal grid dimensions
func (s *TerminalSurface) Cells() (cols, rows int) {
	return s.cols, s.rows
}

func (s *TerminalSurface) scaleX() float64 {
	return float64(s.cols) / s.width
}

func (s *TerminalSurface) scaleY() float64 {
	return float64(s.rows) / s.height
}

// ToSurfaceY converts a terminal row to the logical y of that row's center
func (s *TerminalSurface) ToSurfaceY(row int) float64 {
	if s.rows == 0 {
		return 0
	}
	return (float64(row) + 0.5) / s.scaleY()
}

func (s *TerminalSurface) Clear(bg tcell.Color) {
	s.bg = bg
	s.screen.Fill(' ', tcell.StyleDefault.Background(bg))
}

func (s *TerminalSurface) FillRect(x, y, w, h float64, color tcell.Color) {
	c0, c1 := cellSpan(x, w, s.scaleX())
	r0, r1 := cellSpan(y, h, s.scaleY())
	style := tcell.StyleDefault.Foreground(color).Background(s.bg)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.set(col, row, constants.FillChar, style)
		}
	}
}

// FillCircle paints cells whose centers fall inside the disc
// A disc smaller than a cell still paints the cell containing its center
func (s *TerminalSurface) FillCircle(cx, cy, r float64, color tcell.Color) {
	sx, sy := s.scaleX(), s.scaleY()
	c0, c1 := cellSpan(cx-r, 2*r, sx)
	r0, r1 := cellSpan(cy-r, 2*r, sy)
	style := tcell.StyleDefault.Foreground(color).Background(s.bg)

	painted := false
	for row := r0; row <= r1; row++ {
		dy := (float64(row)+0.5)/sy - cy
		for col := c0; col <= c1; col++ {
			dx := (float64(col)+0.5)/sx - cx
			if dx*dx+dy*dy <= r*r {
				s.set(col, row, constants.FillChar, style)
				painted = true
			}
		}
	}

	if !painted {
		s.set(int(math.Floor(cx*sx)), int(math.Floor(cy*sy)), constants.FillChar, style)
	}
}

func (s *TerminalSurface) DrawText(text string, cx, y float64, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color).Background(s.bg)
	row := int(math.Floor(y * s.scaleY()))
	col := int(math.Round(cx*s.scaleX())) - runewidth.StringWidth(text)/2

	for _, r := range text {
		s.set(col, row, r, style)
		col += runewidth.RuneWidth(r)
	}
}

func (s *TerminalSurface) Show() {
	s.screen.Show()
}

func (s *TerminalSurface) set(col, row int, r rune, style tcell.Style) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return
	}
	s.screen.SetContent(col, row, r, nil, style)
}

// cellSpan returns the inclusive cell range covering [pos, pos+size) at scale cells per unit
func cellSpan(pos, size, scale float64) (int, int) {
	start := int(math.Floor(pos * scale))
	end := int(math.Ceil((pos+size)*scale)) - 1
	if end < start {
		end = start
	}
	return start, end
}
