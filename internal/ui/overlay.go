//go:build ebiten

package ui

import (
	"image/color"

	"mosaic/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type windowProvider interface {
	Window() (core.Position, int, bool)
}

// Overlay outlines the search window of the most recently painted cell.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
	clr   color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, show: true, clr: color.RGBA{R: 255, G: 255, B: 255, A: 160}}
}

// Update toggles the overlay with W.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(windowProvider)
	if !ok {
		return
	}
	center, r, ok := provider.Window()
	if !ok {
		return
	}
	n := o.sim.Size().W
	if n <= 0 {
		return
	}
	scale := float32(max(o.scale, 1))
	side := float32(2*r + 1)
	x0 := float32(center.X - r)
	y0 := float32(center.Y - r)

	// The window wraps, so draw its copies shifted by one canvas in each
	// direction and let the screen clip them.
	for _, dy := range []float32{-1, 0, 1} {
		for _, dx := range []float32{-1, 0, 1} {
			x := (x0 + dx*float32(n)) * scale
			y := (y0 + dy*float32(n)) * scale
			vector.StrokeRect(screen, x, y, side*scale, side*scale, 1, o.clr, false)
		}
	}
	cx := float32(center.X) * scale
	cy := float32(center.Y) * scale
	vector.StrokeRect(screen, cx, cy, scale, scale, 1, color.RGBA{R: 255, G: 60, B: 60, A: 255}, false)
}
