package render

import (
	"image"
	"image/color"

	"mosaic/internal/core"
)

// GridImage converts a finished grid into an opaque RGBA image. Channel 0, 1
// and 2 become R, G and B.
func GridImage(g *core.ColorGrid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.N, g.N))
	fillColorsRGBA(img.Pix, g.Colors())
	return img
}

// FillCanvasRGBA converts canvas cells into RGBA pixels in buf. Empty cells
// use the empty color so partially painted canvases can be displayed.
func FillCanvasRGBA(buf []byte, cells []core.Cell, empty color.RGBA) {
	for i, c := range cells {
		base := i * 4
		if !c.Filled {
			buf[base+0] = empty.R
			buf[base+1] = empty.G
			buf[base+2] = empty.B
			buf[base+3] = empty.A
			continue
		}
		buf[base+0] = c.Color[0]
		buf[base+1] = c.Color[1]
		buf[base+2] = c.Color[2]
		buf[base+3] = 0xff
	}
}

func fillColorsRGBA(buf []byte, colors []core.Color) {
	for i, c := range colors {
		base := i * 4
		buf[base+0] = c[0]
		buf[base+1] = c[1]
		buf[base+2] = c[2]
		buf[base+3] = 0xff
	}
}

// GridFromImage reads the RGB channels of img back into a square grid. Images
// that are not square are cropped to their smaller side.
func GridFromImage(img image.Image) *core.ColorGrid {
	b := img.Bounds()
	n := min(b.Dx(), b.Dy())
	g := core.NewColorGrid(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			r, gr, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			g.Set(x, y, core.Color{uint8(r >> 8), uint8(gr >> 8), uint8(bl >> 8)})
		}
	}
	return g
}
