// pong-sim runs the simulation headless with a scripted pointer and prints a match summary
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Pointer scripts
const (
	pointerFollow = "follow" // Tracks the ball with a fixed lag
	pointerSine   = "sine"   // Sweeps the surface regardless of the ball
	pointerIdle   = "idle"   // Never moves
)

// followLag is how many frames the follow script trails the ball
const followLag = 6

type summary struct {
	Frames       uint64
	Score        engine.Score
	PaddleHits   int
	LongestRally int
	MaxSpeedX    float64
	Elapsed      time.Duration
}

func main() {
	var frames int
	var pointer string
	register := func(fs *flag.FlagSet) {
		fs.IntVar(&frames, "frames", 36000, "Frames to simulate")
		fs.StringVar(&pointer, "pointer", pointerFollow, "Pointer script: follow, sine, idle")
	}

	cfg, err := config.Load("pong-sim", os.Args[1:], os.Stderr, register)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "pong-sim: %v\n", err)
		os.Exit(1)
	}

	script, err := newScript(pointer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong-sim: %v\n", err)
		os.Exit(1)
	}
	if frames <= 0 {
		fmt.Fprintf(os.Stderr, "pong-sim: frames must be positive, got %d\n", frames)
		os.Exit(1)
	}

	seed := cfg.ResolveSeed(time.Now())
	state := engine.NewState(cfg.Game, vmath.NewFastRand(seed))
	sum := simulate(state, frames, script)
	printSummary(os.Stdout, seed, sum)
}

// script returns the pointer y for the current frame, NaN for no movement
type script func(s *engine.State, history []float64) float64

func newScript(name string) (script, error) {
	switch name {
	case pointerFollow:
		return func(s *engine.State, history []float64) float64 {
			if len(history) < followLag {
				return math.NaN()
			}
			return history[len(history)-followLag]
		}, nil
	case pointerSine:
		return func(s *engine.State, _ []float64) float64 {
			h := s.Config.SurfaceHeight
			return h/2 + h/2*math.Sin(float64(s.Frame)/60)
		}, nil
	case pointerIdle:
		return func(*engine.State, []float64) float64 { return math.NaN() }, nil
	default:
		return nil, errors.Errorf("unknown pointer script %q", name)
	}
}

// simulate drives the loop the same way the interactive binary does: input, then Step
func simulate(s *engine.State, frames int, next script) summary {
	start := time.Now()
	history := make([]float64, 0, followLag)
	var sum summary
	rally := 0

	for i := 0; i < frames; i++ {
		history = append(history, s.Ball.Center(s.Config))
		if len(history) > followLag {
			history = history[1:]
		}

		engine.TrackPointer(s, next(s, history))
		engine.Step(s)

		if s.Events&(engine.EventLeftPaddleHit|engine.EventRightPaddleHit) != 0 {
			sum.PaddleHits++
			rally++
			if rally > sum.LongestRally {
				sum.LongestRally = rally
			}
		}
		if s.Events&(engine.EventLeftScored|engine.EventRightScored) != 0 {
			rally = 0
		}
		sum.MaxSpeedX = math.Max(sum.MaxSpeedX, math.Abs(s.Ball.VX))
	}

	sum.Frames = s.Frame
	sum.Score = s.Score
	sum.Elapsed = time.Since(start)
	return sum
}

func printSummary(w io.Writer, seed uint64, sum summary) {
	fmt.Fprintf(w, "seed:          %d\n", seed)
	fmt.Fprintf(w, "frames:        %d\n", sum.Frames)
	fmt.Fprintf(w, "score:         %d - %d\n", sum.Score.Left, sum.Score.Right)
	fmt.Fprintf(w, "paddle hits:   %d\n", sum.PaddleHits)
	fmt.Fprintf(w, "longest rally: %d\n", sum.LongestRally)
	fmt.Fprintf(w, "max |vx|:      %.2f\n", sum.MaxSpeedX)
	fmt.Fprintf(w, "elapsed:       %v\n", sum.Elapsed)
}
