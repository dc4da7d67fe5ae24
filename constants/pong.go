package constants

// Surface Dimensions (logical units, independent of terminal cell count)
const (
	// SurfaceWidth is the default logical width of the playfield
	SurfaceWidth = 800.0

	// SurfaceHeight is the default logical height of the playfield
	SurfaceHeight = 400.0
)

// --- Paddle ---
const (
	PaddleWidth  = 12.0
	PaddleHeight = 80.0

	// PaddleMargin is the distance from the surface edge to the paddle's outer edge
	PaddleMargin = 20.0

	// PaddleSpeed is the opponent's per-frame tracking step
	PaddleSpeed = 5.0

	// PaddleNudge is the keyboard step for the player paddle
	PaddleNudge = 20.0
)

// --- Ball ---
const (
	BallSize = 14.0

	// BallBaseSpeed is the horizontal speed magnitude assigned on serve
	BallBaseSpeed = 5.0

	// BallMaxSpeed caps each velocity component after paddle acceleration
	BallMaxSpeed = 40.0

	// BallAcceleration scales horizontal speed on every paddle hit
	BallAcceleration = 1.05

	// BallPerturbation is the half-width of the vertical kick added on paddle hits
	BallPerturbation = 1.0
)
