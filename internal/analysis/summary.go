// Package analysis measures finished grids.
package analysis

import (
	"mosaic/internal/core"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"
)

// ChannelStats holds the population mean and standard deviation of a channel.
type ChannelStats struct {
	Mean   float64
	StdDev float64
}

// Summary describes a grid's color distribution and local smoothness.
type Summary struct {
	Cells    int
	Channels [3]ChannelStats
	// NeighborDeltaE is the mean CIE76 distance between each cell and its
	// right and lower neighbors on the torus.
	NeighborDeltaE float64
}

// Summarize computes a Summary for g. An empty grid yields the zero Summary.
func Summarize(g *core.ColorGrid) Summary {
	colors := g.Colors()
	if len(colors) == 0 {
		return Summary{}
	}
	s := Summary{Cells: len(colors)}

	values := make([]float64, len(colors))
	for ch := range s.Channels {
		for i, c := range colors {
			values[i] = float64(c[ch])
		}
		mean, std := stat.PopMeanStdDev(values, nil)
		s.Channels[ch] = ChannelStats{Mean: mean, StdDev: std}
	}

	cols := make([]colorful.Color, len(colors))
	for i, c := range colors {
		cols[i] = toColorful(c)
	}
	n := g.N
	deltas := make([]float64, 0, 2*len(colors))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			here := cols[y*n+x]
			right := cols[y*n+(x+1)%n]
			down := cols[((y+1)%n)*n+x]
			deltas = append(deltas, here.DistanceLab(right), here.DistanceLab(down))
		}
	}
	s.NeighborDeltaE = stat.Mean(deltas, nil)
	return s
}

func toColorful(c core.Color) colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}
