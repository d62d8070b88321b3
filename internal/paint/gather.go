package paint

import "mosaic/internal/core"

// Neighbor is a filled cell found in a search window together with its
// squared spatial offset from the window center.
type Neighbor struct {
	Pos    core.Position
	SqDist int
}

// Gather scans the wrapped (2r+1)×(2r+1) window around center and returns
// every filled cell in it. When the window is wider than the canvas a cell
// can be reported once per offset that reaches it.
func Gather(c *core.Canvas, center core.Position, r int) []Neighbor {
	return AppendNeighbors(nil, c, center, r)
}

// AppendNeighbors is Gather appending into dst, letting callers reuse a buffer.
func AppendNeighbors(dst []Neighbor, c *core.Canvas, center core.Position, r int) []Neighbor {
	if c.N == 0 || r < 0 {
		return dst
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			x, y := c.Wrap(center.X+dx, center.Y+dy)
			q := core.Position{X: x, Y: y}
			if !c.At(q).Filled {
				continue
			}
			dst = append(dst, Neighbor{Pos: q, SqDist: dx*dx + dy*dy})
		}
	}
	return dst
}
