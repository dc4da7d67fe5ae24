package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the simulation and rendering interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffer between the terminal poller and the frame loop
	EventQueueSize = 256
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-pong.log"

	// MaxLogSize triggers rotation to a timestamped vi-pong-YYYYMMDD-HHMMSS.log on startup
	MaxLogSize = 10 * 1024 * 1024
)
