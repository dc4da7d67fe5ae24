package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-pong/vmath"
)

const epsilon = 1e-9

// newTestState returns a state on the default playfield with a fixed seed
func newTestState(t *testing.T) *State {
	t.Helper()
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	return NewState(cfg, vmath.NewFastRand(42))
}

// parkPaddles moves both paddles to the bottom so they cannot intercept a ball near the top
func parkPaddles(s *State) {
	s.Player.Y = s.Config.MaxPaddleY()
	s.Opponent.Y = s.Config.MaxPaddleY()
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}
