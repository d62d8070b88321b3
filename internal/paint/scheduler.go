package paint

import (
	"math"

	"mosaic/internal/core"
)

const (
	// NeededNonzero is the number of filled cells a search window should
	// contain on average.
	NeededNonzero = 5

	// maxSide bounds the window side and radius so they fit in a byte.
	maxSide = 255
)

// Source supplies the randomness consumed by the scheduler and the refiner.
// *math/rand/v2.Rand and *mosaic/pkg/core.RNG satisfy it.
type Source interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
}

// Positions returns every cell of an n×n grid exactly once, in uniformly
// random order.
func Positions(n int, src Source) []core.Position {
	if n <= 0 {
		return nil
	}
	out := make([]core.Position, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out = append(out, core.Position{X: x, Y: y})
		}
	}
	src.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// MaxRadius returns the largest search radius used on an n×n grid.
func MaxRadius(n int) int {
	if n <= 1 {
		return 0
	}
	r := math.Ceil(math.Sqrt(float64(n / 2)))
	if r > maxSide {
		return maxSide
	}
	return int(r)
}

// Radius returns the search radius for visitation index i out of total cells
// on an n×n grid. The window is sized so that it holds about NeededNonzero
// filled cells. At i == 0 nothing is filled and the side saturates at 255.
func Radius(i, total, n int) int {
	side := maxSide
	if i > 0 && total > 0 {
		fraction := float64(i) / float64(total)
		needed := NeededNonzero / fraction
		if s := math.Ceil(math.Sqrt(needed)); s < maxSide {
			side = int(s)
		}
	}
	return min(side/2, MaxRadius(n))
}
