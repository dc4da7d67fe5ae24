package constants

import "testing"

// TestPlayfieldFitsDefaults verifies the default geometry leaves room for play between the paddles
func TestPlayfieldFitsDefaults(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"Paddle fits vertically", PaddleHeight < SurfaceHeight},
		{"Ball fits vertically", BallSize < SurfaceHeight},
		{"Paddle zones leave a gap", 2*(PaddleMargin+PaddleWidth)+BallSize < SurfaceWidth},
		{"Base speed below cap", BallBaseSpeed <= BallMaxSpeed},
		{"Acceleration speeds up", BallAcceleration >= 1},
		{"Net dash shorter than spacing", NetDashLength < NetDashSpacing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.ok {
				t.Errorf("%s: constraint violated", tt.name)
			}
		})
	}
}
