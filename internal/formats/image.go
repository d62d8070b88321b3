// Package formats registers the file encoders a finished grid can be saved
// with. Import it for its side effects.
package formats

import (
	"image/png"
	"io"

	"mosaic/internal/core"
	"mosaic/internal/render"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type pngEncoder struct {
	level png.CompressionLevel
}

func (pngEncoder) Ext() string { return "png" }

func (e pngEncoder) Encode(w io.Writer, g *core.ColorGrid) error {
	enc := png.Encoder{CompressionLevel: e.level}
	return enc.Encode(w, render.GridImage(g))
}

type bmpEncoder struct{}

func (bmpEncoder) Ext() string { return "bmp" }

func (bmpEncoder) Encode(w io.Writer, g *core.ColorGrid) error {
	return bmp.Encode(w, render.GridImage(g))
}

type tiffEncoder struct{}

func (tiffEncoder) Ext() string { return "tiff" }

func (tiffEncoder) Encode(w io.Writer, g *core.ColorGrid) error {
	return tiff.Encode(w, render.GridImage(g), &tiff.Options{Compression: tiff.Deflate})
}

func init() {
	core.RegisterEncoder("png", pngEncoder{level: png.BestCompression})
	core.RegisterEncoder("bmp", bmpEncoder{})
	core.RegisterEncoder("tiff", tiffEncoder{})
	core.RegisterEncoder("rgbz", rgbzEncoder{})
}
