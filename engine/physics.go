package engine

import (
	"github.com/lixenwraith/vi-pong/vmath"
)

// PhysicsStep advances the ball one frame
// Order is fixed: each check reads the position corrected by the previous one
func PhysicsStep(s *State) {
	integrate(s)
	collideWalls(s)
	collideLeftPaddle(s)
	collideRightPaddle(s)
	checkScore(s)
}

// ResetBall re-serves the ball from the center toward dir
func ResetBall(s *State, dir Direction) {
	cfg := s.Config
	s.Ball = Ball{
		X:  cfg.SurfaceWidth/2 - cfg.BallSize/2,
		Y:  cfg.SurfaceHeight/2 - cfg.BallSize/2,
		VX: cfg.BaseSpeed * float64(dir),
		VY: s.rng.Range(-cfg.BaseSpeed, cfg.BaseSpeed),
	}
}

func integrate(s *State) {
	s.Ball.X += s.Ball.VX
	s.Ball.Y += s.Ball.VY
}

// collideWalls reflects off top and bottom; both checks run but only one can fire for a ball smaller than the surface
func collideWalls(s *State) {
	b := &s.Ball
	if b.Y <= 0 {
		b.Y = 0
		b.VY = -b.VY
		s.Events |= EventWallHit
	}
	if maxY := s.Config.MaxBallY(); b.Y >= maxY {
		b.Y = maxY
		b.VY = -b.VY
		s.Events |= EventWallHit
	}
}

func collideLeftPaddle(s *State) {
	cfg := s.Config
	b := &s.Ball
	edge := cfg.LeftPaddleX() + cfg.PaddleWidth

	if b.VX >= 0 || b.X > edge || !overlapsPaddle(cfg, *b, s.Player) {
		return
	}

	b.X = edge
	bounce(s)
	s.Events |= EventLeftPaddleHit
}

func collideRightPaddle(s *State) {
	cfg := s.Config
	b := &s.Ball
	edge := cfg.RightPaddleX()

	if b.VX <= 0 || b.X+cfg.BallSize < edge || !overlapsPaddle(cfg, *b, s.Opponent) {
		return
	}

	b.X = edge - cfg.BallSize
	bounce(s)
	s.Events |= EventRightPaddleHit
}

// bounce reverses and accelerates horizontal velocity, then kicks vertical velocity
// The kick keeps the ball out of a flat, unbeatable trajectory
func bounce(s *State) {
	cfg := s.Config
	b := &s.Ball
	b.VX = vmath.ClampAbs(-b.VX*cfg.Acceleration, cfg.MaxBallSpeed)
	b.VY = vmath.ClampAbs(b.VY+s.rng.Range(-cfg.BallPerturbation, cfg.BallPerturbation), cfg.MaxBallSpeed)
}

func overlapsPaddle(cfg Config, b Ball, p Paddle) bool {
	return b.Y+cfg.BallSize >= p.Y && b.Y <= p.Y+cfg.PaddleHeight
}

func checkScore(s *State) {
	cfg := s.Config
	switch {
	case s.Ball.X < 0:
		s.Score.Right++
		s.Events |= EventRightScored
		ResetBall(s, ServeRight)
	case s.Ball.X+cfg.BallSize > cfg.SurfaceWidth:
		s.Score.Left++
		s.Events |= EventLeftScored
		ResetBall(s, ServeLeft)
	}
}
