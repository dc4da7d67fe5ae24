package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Config holds the fixed playfield geometry and ball tuning
// Set once at startup, never changed while the loop runs
type Config struct {
	SurfaceWidth  float64
	SurfaceHeight float64

	PaddleWidth  float64
	PaddleHeight float64
	PaddleMargin float64
	PaddleSpeed  float64

	BallSize         float64
	BaseSpeed        float64
	MaxBallSpeed     float64
	Acceleration     float64
	BallPerturbation float64
}

// DefaultConfig returns the classic playfield
func DefaultConfig() Config {
	return Config{
		SurfaceWidth:     constants.SurfaceWidth,
		SurfaceHeight:    constants.SurfaceHeight,
		PaddleWidth:      constants.PaddleWidth,
		PaddleHeight:     constants.PaddleHeight,
		PaddleMargin:     constants.PaddleMargin,
		PaddleSpeed:      constants.PaddleSpeed,
		BallSize:         constants.BallSize,
		BaseSpeed:        constants.BallBaseSpeed,
		MaxBallSpeed:     constants.BallMaxSpeed,
		Acceleration:     constants.BallAcceleration,
		BallPerturbation: constants.BallPerturbation,
	}
}

// Validate rejects geometry the step functions cannot keep within bounds
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"surface width", c.SurfaceWidth},
		{"surface height", c.SurfaceHeight},
		{"paddle width", c.PaddleWidth},
		{"paddle height", c.PaddleHeight},
		{"paddle speed", c.PaddleSpeed},
		{"ball size", c.BallSize},
		{"ball speed", c.BaseSpeed},
		{"max ball speed", c.MaxBallSpeed},
		{"paddle margin", c.PaddleMargin},
		{"ball perturbation", c.BallPerturbation},
		{"acceleration", c.Acceleration},
	}
	// NaN and Inf slip past every ordered comparison below
	for _, f := range fields {
		if !vmath.IsFinite(f.value) {
			return errors.Errorf("%s must be finite, got %v", f.name, f.value)
		}
	}

	// Dimensions and speeds, the first eight fields
	for _, p := range fields[:8] {
		if !(p.value > 0) {
			return errors.Errorf("%s must be positive, got %v", p.name, p.value)
		}
	}

	if c.PaddleMargin < 0 {
		return errors.Errorf("paddle margin must not be negative, got %v", c.PaddleMargin)
	}
	if c.BallPerturbation < 0 {
		return errors.Errorf("ball perturbation must not be negative, got %v", c.BallPerturbation)
	}
	if c.PaddleHeight > c.SurfaceHeight {
		return errors.Errorf("paddle height %v exceeds surface height %v", c.PaddleHeight, c.SurfaceHeight)
	}
	if c.BallSize >= c.SurfaceHeight {
		return errors.Errorf("ball size %v must be smaller than surface height %v", c.BallSize, c.SurfaceHeight)
	}
	if 2*(c.PaddleMargin+c.PaddleWidth)+c.BallSize >= c.SurfaceWidth {
		return errors.Errorf("paddle zones leave no room for the ball on a %v wide surface", c.SurfaceWidth)
	}
	if c.Acceleration < 1 {
		return errors.Errorf("acceleration must be at least 1, got %v", c.Acceleration)
	}
	if c.MaxBallSpeed < c.BaseSpeed {
		return errors.Errorf("max ball speed %v is below base speed %v", c.MaxBallSpeed, c.BaseSpeed)
	}
	return nil
}

// MaxPaddleY is the lowest valid top edge for a paddle
func (c Config) MaxPaddleY() float64 {
	return c.SurfaceHeight - c.PaddleHeight
}

// MaxBallY is the lowest valid top edge for the ball
func (c Config) MaxBallY() float64 {
	return c.SurfaceHeight - c.BallSize
}

// LeftPaddleX is the left paddle's outer (left) edge
func (c Config) LeftPaddleX() float64 {
	return c.PaddleMargin
}

// RightPaddleX is the right paddle's inner (left) edge
func (c Config) RightPaddleX() float64 {
	return c.SurfaceWidth - c.PaddleMargin - c.PaddleWidth
}

// CenterPaddleY is the top edge of a vertically centered paddle
func (c Config) CenterPaddleY() float64 {
	return c.SurfaceHeight/2 - c.PaddleHeight/2
}
