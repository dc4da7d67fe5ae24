package engine

// UpdateOpponent moves the opponent paddle one PaddleSpeed step toward the ball's vertical center
// Greedy, not predictive: it lags fast balls and oscillates around a stationary one
func UpdateOpponent(s *State) {
	cfg := s.Config
	paddleCenter := s.Opponent.Center(cfg)
	ballCenter := s.Ball.Center(cfg)

	switch {
	case paddleCenter < ballCenter:
		s.Opponent.Y += cfg.PaddleSpeed
	case paddleCenter > ballCenter:
		s.Opponent.Y -= cfg.PaddleSpeed
	}

	s.Opponent.Y = clampPaddle(cfg, s.Opponent.Y)
}
