package paint

import (
	"fmt"

	"mosaic/internal/core"
)

// Parameters describes the painting's configuration and progress.
func (p *Painter) Parameters() core.ParameterSnapshot {
	n := p.canvas.N
	total := len(p.order)
	radius := 0
	if !p.Done() {
		radius = Radius(p.next, total, n)
	}
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("size", "Size", n),
				core.Int64Param("seed", "Seed", p.seed),
				core.IntParam("max_radius", "Max radius", MaxRadius(n)),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("step", "Step", p.next),
				core.IntParam("total", "Cells", total),
				core.FloatParam("fill", "Fill fraction", p.Progress()),
				core.IntParam("radius", "Next radius", radius),
			},
		},
	}
	if v, ok := p.Last(); ok {
		groups = append(groups, core.ParameterGroup{
			Name: "Last cell",
			Params: []core.Parameter{
				{Key: "pos", Label: "Position", Value: v.Pos.String()},
				core.IntParam("neighbors", "Neighbors", v.Neighbors),
				{Key: "color", Label: "Color", Value: fmt.Sprintf("#%02x%02x%02x", v.Color[0], v.Color[1], v.Color[2])},
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}
