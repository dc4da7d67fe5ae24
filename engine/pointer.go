package engine

import (
	"math"

	"github.com/lixenwraith/vi-pong/vmath"
)

// TrackPointer centers the player paddle on pointer y (surface-local) and clamps it to the surface
// NaN is ignored so a bad coordinate never poisons the paddle position
func TrackPointer(s *State, y float64) {
	if math.IsNaN(y) {
		return
	}
	s.Player.Y = clampPaddle(s.Config, y-s.Config.PaddleHeight/2)
}

// NudgePointer moves the player paddle by dy with the same clamping as TrackPointer
func NudgePointer(s *State, dy float64) {
	if math.IsNaN(dy) {
		return
	}
	s.Player.Y = clampPaddle(s.Config, s.Player.Y+dy)
}

func clampPaddle(cfg Config, y float64) float64 {
	return vmath.Clamp(y, 0, cfg.MaxPaddleY())
}
