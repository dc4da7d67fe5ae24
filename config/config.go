// Package config assembles startup settings from defaults, an optional TOML file and command-line flags
package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
)

// Colors are hex strings ("#fff", "#1a1b26") resolved by the render package
type Colors struct {
	Foreground string `toml:"foreground"`
	Net        string `toml:"net"`
	Background string `toml:"background"`
	Flash      string `toml:"flash"`
}

// Config is the resolved startup configuration
type Config struct {
	Game          engine.Config
	Colors        Colors
	Seed          uint64 // 0 selects a time-based seed
	FrameInterval time.Duration
	Debug         bool
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Game: engine.DefaultConfig(),
		Colors: Colors{
			Foreground: constants.ColorForeground,
			Net:        constants.ColorNet,
			Background: constants.ColorBackground,
			Flash:      constants.ColorFlash,
		},
		FrameInterval: constants.FrameUpdateInterval,
	}
}

// fileConfig mirrors the TOML layout; fields absent from the file keep their prefilled value
type fileConfig struct {
	Seed          uint64 `toml:"seed"`
	FrameInterval string `toml:"frame_interval"`
	Surface       struct {
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
	} `toml:"surface"`
	Paddle struct {
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
		Margin float64 `toml:"margin"`
		Speed  float64 `toml:"speed"`
	} `toml:"paddle"`
	Ball struct {
		Size         float64 `toml:"size"`
		Speed        float64 `toml:"speed"`
		MaxSpeed     float64 `toml:"max_speed"`
		Acceleration float64 `toml:"acceleration"`
		Perturbation float64 `toml:"perturbation"`
	} `toml:"ball"`
	Colors Colors `toml:"colors"`
}

func (c *Config) toFile() fileConfig {
	var f fileConfig
	f.Seed = c.Seed
	f.FrameInterval = c.FrameInterval.String()
	f.Surface.Width = c.Game.SurfaceWidth
	f.Surface.Height = c.Game.SurfaceHeight
	f.Paddle.Width = c.Game.PaddleWidth
	f.Paddle.Height = c.Game.PaddleHeight
	f.Paddle.Margin = c.Game.PaddleMargin
	f.Paddle.Speed = c.Game.PaddleSpeed
	f.Ball.Size = c.Game.BallSize
	f.Ball.Speed = c.Game.BaseSpeed
	f.Ball.MaxSpeed = c.Game.MaxBallSpeed
	f.Ball.Acceleration = c.Game.Acceleration
	f.Ball.Perturbation = c.Game.BallPerturbation
	f.Colors = c.Colors
	return f
}

func (c *Config) fromFile(f fileConfig) error {
	interval, err := time.ParseDuration(f.FrameInterval)
	if err != nil {
		return errors.Wrapf(err, "frame_interval %q", f.FrameInterval)
	}
	c.Seed = f.Seed
	c.FrameInterval = interval
	c.Game.SurfaceWidth = f.Surface.Width
	c.Game.SurfaceHeight = f.Surface.Height
	c.Game.PaddleWidth = f.Paddle.Width
	c.Game.PaddleHeight = f.Paddle.Height
	c.Game.PaddleMargin = f.Paddle.Margin
	c.Game.PaddleSpeed = f.Paddle.Speed
	c.Game.BallSize = f.Ball.Size
	c.Game.BaseSpeed = f.Ball.Speed
	c.Game.MaxBallSpeed = f.Ball.MaxSpeed
	c.Game.Acceleration = f.Ball.Acceleration
	c.Game.BallPerturbation = f.Ball.Perturbation
	c.Colors = f.Colors
	return nil
}

// Decode overlays TOML data onto c. Unknown keys are rejected to surface typos
func (c *Config) Decode(data string) error {
	f := c.toFile()
	md, err := toml.Decode(data, &f)
	if err != nil {
		return errors.Wrap(err, "config parse")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("config: unknown key %q", undecoded[0].String())
	}
	return c.fromFile(f)
}

// LoadFile overlays the TOML file at path onto c
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "config read")
	}
	return c.Decode(string(data))
}

// Validate checks the game geometry and the loop timing
func (c *Config) Validate() error {
	if c.FrameInterval <= 0 {
		return errors.Errorf("frame interval must be positive, got %v", c.FrameInterval)
	}
	if err := c.Game.Validate(); err != nil {
		return errors.Wrap(err, "game config")
	}
	return nil
}

// ResolveSeed returns the configured seed, or one derived from now when unset
func (c *Config) ResolveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}

// Load resolves configuration for a binary: defaults, then -config file, then explicit flags
// Help and usage errors are written to output. register adds binary-specific flags to the same set
func Load(name string, args []string, output io.Writer, register ...func(fs *flag.FlagSet)) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	configPath := fs.String("config", "", "Path to a TOML config file")
	seed := fs.Uint64("seed", 0, "Random seed (0 = time-based)")
	width := fs.Float64("width", cfg.Game.SurfaceWidth, "Logical surface width")
	height := fs.Float64("height", cfg.Game.SurfaceHeight, "Logical surface height")
	fps := fs.Int("fps", 0, "Frames per second (overrides frame_interval)")
	debug := fs.Bool("debug", false, "Enable logging to the logs directory")
	for _, r := range register {
		r(fs)
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			return cfg, err
		}
	}

	var fpsErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "width":
			cfg.Game.SurfaceWidth = *width
		case "height":
			cfg.Game.SurfaceHeight = *height
		case "fps":
			if *fps <= 0 {
				fpsErr = errors.Errorf("fps must be positive, got %d", *fps)
				return
			}
			cfg.FrameInterval = time.Second / time.Duration(*fps)
		case "debug":
			cfg.Debug = *debug
		}
	})
	if fpsErr != nil {
		return cfg, fpsErr
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
