package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/vmath"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load("vi-pong", os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	palette, err := render.NewPalette(cfg.Colors)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}

	screen, err := initScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	seed := cfg.ResolveSeed(time.Now())
	log.Printf("start: seed=%d surface=%vx%v interval=%v", seed, cfg.Game.SurfaceWidth, cfg.Game.SurfaceHeight, cfg.FrameInterval)

	state := engine.NewState(cfg.Game, vmath.NewFastRand(seed))
	g := newGame(state, screen, palette, cfg.FrameInterval)
	g.run()

	log.Printf("exit: frames=%d score=%d-%d", state.Frame, state.Score.Left, state.Score.Right)
}

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return screen, nil
}
