//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"mosaic/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 10
	hudLineHeight = 16
)

// HUD renders the parameter panel to the right of the canvas view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
	status     string
}

// NewHUD constructs a HUD for the provided painting and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// SetStatus shows a one-line message under the parameters.
func (h *HUD) SetStatus(msg string) {
	if h != nil {
		h.status = msg
	}
}

// Update refreshes the cached parameter snapshot from the painting.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the HUD panel anchored to the right edge of the canvas view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := max(h.sim.Size().H*scale, 240)
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := hudPadding + hudLineHeight
	text.Draw(h.panel, h.title, face, hudPadding, y, color.White)
	y += hudLineHeight
	for _, group := range h.snapshot.Groups {
		y += hudLineHeight / 2
		text.Draw(h.panel, group.Name, face, hudPadding, y, color.RGBA{R: 160, G: 190, B: 255, A: 255})
		y += hudLineHeight
		for _, p := range group.Params {
			line := fmt.Sprintf("%-14s %s", p.Label, p.Value)
			text.Draw(h.panel, line, face, hudPadding, y, color.RGBA{R: 220, G: 220, B: 220, A: 255})
			y += hudLineHeight
		}
	}
	if h.status != "" {
		y += hudLineHeight / 2
		text.Draw(h.panel, h.status, face, hudPadding, y, color.RGBA{R: 255, G: 200, B: 90, A: 255})
	}
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
