//go:build ebiten

package render

import (
	"image/color"

	"mosaic/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// CanvasPainter uploads canvas cells into a single RGBA image.
type CanvasPainter struct {
	n   int
	img *ebiten.Image
	buf []byte
}

// NewCanvasPainter allocates a painter for an n×n canvas.
func NewCanvasPainter(n int) *CanvasPainter {
	side := max(n, 1)
	cp := &CanvasPainter{n: n, buf: make([]byte, 4*n*n)}
	cp.img = ebiten.NewImage(side, side)
	return cp
}

// Blit uploads the provided cells into the painter image and draws it.
func (cp *CanvasPainter) Blit(dst *ebiten.Image, cells []core.Cell, empty color.RGBA, scale int) {
	if len(cells) != cp.n*cp.n || cp.n == 0 {
		return
	}
	FillCanvasRGBA(cp.buf, cells, empty)
	cp.img.WritePixels(cp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(cp.img, op)
}
