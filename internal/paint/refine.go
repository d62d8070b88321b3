package paint

import "mosaic/internal/core"

const (
	rounds     = 7
	candidates = 8
	channels   = 3
)

// Refine picks a color for a cell by bisecting all three channels at once.
// Each round scores the 8 octants of the remaining channel ranges at their
// midpoints against the neighbors, weighting every neighbor by the inverse of
// its squared distance, and keeps the best octant.
func Refine(c *core.Canvas, neighbors []Neighbor, src Source) core.Color {
	var current [channels]int
	var scores [candidates]float64
	for k := 0; k < rounds; k++ {
		width := 128 >> k
		for p := range scores {
			scores[p] = 0
		}
		for _, nb := range neighbors {
			col := c.At(nb.Pos).Color
			sq := float64(nb.SqDist)
			for p := 0; p < candidates; p++ {
				dist := 0
				for ch := 0; ch < channels; ch++ {
					diff := current[ch] + bit(p, ch)*width + width/2 - int(col[ch])
					dist += diff * diff
				}
				scores[p] -= float64(dist) / sq
			}
		}
		best := Best(scores[:], src)
		for ch := 0; ch < channels; ch++ {
			current[ch] += bit(best, ch) * width
		}
	}
	return core.Color{uint8(current[0]), uint8(current[1]), uint8(current[2])}
}

// Best returns the index of the highest score. When several scores share the
// maximum one of them is chosen uniformly at random. It returns -1 for an
// empty slice.
func Best(scores []float64, src Source) int {
	if len(scores) == 0 {
		return -1
	}
	top := scores[0]
	ties := 0
	for _, s := range scores {
		switch {
		case s > top:
			top = s
			ties = 1
		case s == top:
			ties++
		}
	}
	pick := src.IntN(ties)
	for i, s := range scores {
		if s != top {
			continue
		}
		if pick == 0 {
			return i
		}
		pick--
	}
	return -1
}

func bit(p, ch int) int { return (p >> ch) & 1 }
