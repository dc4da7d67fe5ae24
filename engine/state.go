package engine

import (
	"github.com/lixenwraith/vi-pong/vmath"
)

// Paddle is a vertical bat; geometry lives in Config
type Paddle struct {
	Y float64 // Top edge
}

// Center returns the paddle's vertical center
func (p Paddle) Center(cfg Config) float64 {
	return p.Y + cfg.PaddleHeight/2
}

// Ball is a square of Config.BallSize anchored at its top-left corner
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// Center returns the ball's vertical center
func (b Ball) Center(cfg Config) float64 {
	return b.Y + cfg.BallSize/2
}

// Score counts points per side, unbounded
type Score struct {
	Left  int
	Right int
}

// Direction is the serve direction: sign of horizontal velocity after a reset
type Direction float64

const (
	ServeLeft  Direction = -1
	ServeRight Direction = 1
)

// Event flags raised during a frame, cleared at the start of the next Step
type Event uint8

const (
	EventWallHit Event = 1 << iota
	EventLeftPaddleHit
	EventRightPaddleHit
	EventLeftScored  // Ball left the surface on the right
	EventRightScored // Ball left the surface on the left
)

// Has reports whether all flags in mask are set
func (e Event) Has(mask Event) bool {
	return e&mask == mask
}

// State is the complete simulation, owned by a single loop
type State struct {
	Config Config

	Player   Paddle // Left, pointer-controlled
	Opponent Paddle // Right, tracks the ball

	Ball  Ball
	Score Score

	Frame  uint64
	Events Event

	rng *vmath.FastRand
}

// NewState creates the initial state: paddles centered, ball served in a random direction
// Config is assumed valid; callers run Config.Validate at startup
func NewState(cfg Config, rng *vmath.FastRand) *State {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	s := &State{
		Config:   cfg,
		Player:   Paddle{Y: cfg.CenterPaddleY()},
		Opponent: Paddle{Y: cfg.CenterPaddleY()},
		rng:      rng,
	}
	ResetBall(s, Direction(rng.Sign()))
	return s
}
