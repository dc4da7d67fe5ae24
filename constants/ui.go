package constants

// Net Layout (logical units)
const (
	NetDashWidth   = 4.0
	NetDashLength  = 20.0
	NetDashSpacing = 30.0
)

// Score Layout (logical units)
const (
	// ScoreOffsetX is the horizontal distance of each score from the center line
	ScoreOffsetX = 50.0

	// ScoreBaselineY is the vertical position of the score text
	ScoreBaselineY = 50.0
)

// Block characters
const (
	FillChar = '█'
)

// Default palette, hex strings parsed at startup
const (
	ColorForeground = "#fff"
	ColorNet        = "#ccc"
	ColorBackground = "#000"
	ColorFlash      = "#ffa500"
)
