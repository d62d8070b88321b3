package app

import (
	"errors"
	"fmt"

	"mosaic/internal/logging"
	"mosaic/internal/paint"

	"github.com/spf13/pflag"
)

// Config represents the command-line parameters for the preview window.
type Config struct {
	Size          int
	Seed          int64
	Scale         int
	TPS           int
	StepsPerFrame int
	HUDWidth      int
	OutDir        string
	Format        string
	LogLevel      string
}

// NewConfig returns a Config populated with sensible defaults. The painting
// defaults come from paint.DefaultConfig.
func NewConfig() *Config {
	d := paint.DefaultConfig()
	return &Config{
		Size:          d.Size,
		Seed:          d.Seed,
		Scale:         3,
		TPS:           60,
		StepsPerFrame: 64,
		HUDWidth:      220,
		OutDir:        ".",
		Format:        "png",
		LogLevel:      "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid side length")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the painting")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.StepsPerFrame, "steps", c.StepsPerFrame, "cells painted per tick")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "parameter panel width in pixels, 0 hides it")
	fs.StringVarP(&c.OutDir, "out-dir", "o", c.OutDir, "directory for saved pictures")
	fs.StringVarP(&c.Format, "format", "f", c.Format, "format for saved pictures")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: trace, debug, info, warn, error, fatal, none")
}

// Validate reports every invalid option.
func (c *Config) Validate() error {
	var errs []error
	if c.Size < 0 {
		errs = append(errs, fmt.Errorf("size must not be negative, got %d", c.Size))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.StepsPerFrame < 1 {
		errs = append(errs, fmt.Errorf("steps must be positive, got %d", c.StepsPerFrame))
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}
