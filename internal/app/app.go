//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"mosaic/internal/core"
	"mosaic/internal/render"
	"mosaic/internal/sink"
	"mosaic/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

var emptyColor = color.RGBA{R: 24, G: 24, B: 28, A: 255}

// Game adapts a painting to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.CanvasPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	out     *sink.File

	scale         int
	stepsPerFrame int
	paused        bool
	tickOnce      bool
	seed          int64
}

// New constructs a Game for the provided painting.
func New(sim core.Sim, cfg *Config, out *sink.File) *Game {
	return &Game{
		sim:           sim,
		painter:       render.NewCanvasPainter(sim.Size().W),
		overlay:       ui.NewOverlay(sim, cfg.Scale),
		hud:           ui.NewHUD(sim, cfg.HUDWidth),
		out:           out,
		scale:         max(cfg.Scale, 1),
		stepsPerFrame: max(cfg.StepsPerFrame, 1),
		seed:          cfg.Seed,
	}
}

// Reset restarts the painting with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.hud.SetStatus(fmt.Sprintf("seed %d", seed))
	log.Info().Int64("seed", seed).Msg("preview reset")
}

// Update handles per-frame logic and advances the painting.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.save()
	}

	g.overlay.Update()

	switch {
	case g.tickOnce:
		g.tickOnce = false
		if err := g.sim.Step(); err != nil {
			return err
		}
	case !g.paused:
		for i := 0; i < g.stepsPerFrame && !g.sim.Done(); i++ {
			if err := g.sim.Step(); err != nil {
				return err
			}
		}
	}
	g.hud.Update()
	return nil
}

func (g *Game) save() {
	if !g.sim.Done() {
		g.hud.SetStatus("not finished yet")
		return
	}
	grid, err := g.sim.Canvas().Colors()
	if err == nil {
		var path string
		path, err = g.out.Save(grid)
		if err == nil {
			g.hud.SetStatus("saved " + path)
			log.Info().Str("path", path).Int64("seed", g.seed).Msg("saved")
			return
		}
	}
	g.hud.SetStatus("save failed")
	log.Error().Err(err).Msg("save failed")
}

// Draw renders the current canvas state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Canvas().Cells(), emptyColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), max(s.H*g.scale, 240)
}
