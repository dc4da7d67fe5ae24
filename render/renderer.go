package render

import (
	"strconv"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
)

// Renderer paints simulation state; it never writes back into the state
type Renderer struct {
	palette Palette
}

func NewRenderer(palette Palette) *Renderer {
	return &Renderer{palette: palette}
}

// Render draws one full frame: net, paddles, ball, scores
func (r *Renderer) Render(s *engine.State, surf Surface) {
	surf.Clear(r.palette.Background)

	r.drawNet(s.Config, surf)
	r.drawPaddles(s, surf)
	r.drawBall(s, surf)
	r.drawScores(s, surf)

	surf.Show()
}

// drawNet draws the dashed center line
func (r *Renderer) drawNet(cfg engine.Config, surf Surface) {
	x := cfg.SurfaceWidth/2 - constants.NetDashWidth/2
	for y := 0.0; y < cfg.SurfaceHeight; y += constants.NetDashSpacing {
		surf.FillRect(x, y, constants.NetDashWidth, constants.NetDashLength, r.palette.Net)
	}
}

func (r *Renderer) drawPaddles(s *engine.State, surf Surface) {
	cfg := s.Config
	surf.FillRect(cfg.LeftPaddleX(), s.Player.Y, cfg.PaddleWidth, cfg.PaddleHeight, r.palette.Foreground)
	surf.FillRect(cfg.RightPaddleX(), s.Opponent.Y, cfg.PaddleWidth, cfg.PaddleHeight, r.palette.Foreground)
}

func (r *Renderer) drawBall(s *engine.State, surf Surface) {
	color := r.palette.Foreground
	if s.Events&(engine.EventLeftPaddleHit|engine.EventRightPaddleHit) != 0 {
		color = r.palette.Flash
	}
	half := s.Config.BallSize / 2
	surf.FillCircle(s.Ball.X+half, s.Ball.Y+half, half, color)
}

func (r *Renderer) drawScores(s *engine.State, surf Surface) {
	center := s.Config.SurfaceWidth / 2
	surf.DrawText(strconv.Itoa(s.Score.Left), center-constants.ScoreOffsetX, constants.ScoreBaselineY, r.palette.Foreground)
	surf.DrawText(strconv.Itoa(s.Score.Right), center+constants.ScoreOffsetX, constants.ScoreBaselineY, r.palette.Foreground)
}
