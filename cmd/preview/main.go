//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"

	"mosaic/internal/app"
	_ "mosaic/internal/formats"
	"mosaic/internal/logging"
	"mosaic/internal/paint"
	"mosaic/internal/sink"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(pflag.CommandLine)
	pflag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "preview:", err)
		os.Exit(2)
	}

	closeLog, err := logging.Setup(cfg.LogLevel, "")
	if err != nil {
		log.Fatal().Err(err).Msg("logging setup")
	}
	defer closeLog()

	out, err := sink.New(cfg.OutDir, cfg.Format, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("output")
	}

	p := paint.NewWithConfig(paint.Config{Size: cfg.Size, Seed: cfg.Seed})
	game := app.New(p, cfg, out)
	size := p.Size()

	ebiten.SetWindowTitle("mosaic " + p.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, max(size.H*cfg.Scale, 240))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("preview")
		os.Exit(1)
	}
}
