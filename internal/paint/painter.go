package paint

import (
	"errors"
	"fmt"

	"mosaic/internal/core"
	rng "mosaic/pkg/core"
)

// ErrInvalidOrder is returned when a forced visitation order does not cover
// the grid exactly once.
var ErrInvalidOrder = errors.New("visitation order is not a permutation of the grid")

// Visit records what happened when one cell was painted.
type Visit struct {
	Index     int
	Pos       core.Position
	Radius    int
	Neighbors int
	Color     core.Color
}

// Painter colors a canvas one cell per step in a fixed random order.
type Painter struct {
	seed   int64
	canvas *core.Canvas
	order  []core.Position
	next   int
	src    Source
	buf    []Neighbor

	last    Visit
	hasLast bool
}

// New returns a Painter for an n×n grid whose order and tie-breaks are drawn
// from src.
func New(n int, src Source) *Painter {
	return &Painter{canvas: core.NewCanvas(n), order: Positions(n, src), src: src}
}

// NewWithConfig returns a Painter seeded from cfg.
func NewWithConfig(cfg Config) *Painter {
	p := New(cfg.Size, rng.NewRNG(cfg.Seed))
	p.seed = cfg.Seed
	return p
}

// NewOrdered returns a Painter that visits cells in the given order. order
// must hold every position of the n×n grid exactly once.
func NewOrdered(n int, order []core.Position, src Source) (*Painter, error) {
	if n < 0 {
		n = 0
	}
	if len(order) != n*n {
		return nil, fmt.Errorf("%d positions for %d cells: %w", len(order), n*n, ErrInvalidOrder)
	}
	seen := make([]bool, n*n)
	for _, pos := range order {
		if pos.X < 0 || pos.X >= n || pos.Y < 0 || pos.Y >= n {
			return nil, fmt.Errorf("position %v outside %dx%d grid: %w", pos, n, n, ErrInvalidOrder)
		}
		idx := pos.Y*n + pos.X
		if seen[idx] {
			return nil, fmt.Errorf("position %v repeated: %w", pos, ErrInvalidOrder)
		}
		seen[idx] = true
	}
	return &Painter{
		canvas: core.NewCanvas(n),
		order:  append([]core.Position(nil), order...),
		src:    src,
	}, nil
}

// Paint colors a complete n×n grid.
func Paint(n int, src Source) (*core.ColorGrid, error) {
	return New(n, src).Run()
}

// Name returns the painting identifier.
func (p *Painter) Name() string { return "mosaic" }

// Size returns the grid dimensions.
func (p *Painter) Size() core.Size { return core.Size{W: p.canvas.N, H: p.canvas.N} }

// Canvas exposes the canvas being painted.
func (p *Painter) Canvas() *core.Canvas { return p.canvas }

// Done reports whether every cell has been painted.
func (p *Painter) Done() bool { return p.next >= len(p.order) }

// Progress reports the painted fraction in [0, 1].
func (p *Painter) Progress() float64 {
	if len(p.order) == 0 {
		return 1
	}
	return float64(p.next) / float64(len(p.order))
}

// Last returns the most recent visit, if any.
func (p *Painter) Last() (Visit, bool) { return p.last, p.hasLast }

// Window returns the center and radius of the most recent search window.
func (p *Painter) Window() (core.Position, int, bool) {
	return p.last.Pos, p.last.Radius, p.hasLast
}

// Reset discards the canvas and starts over with a fresh order drawn from a
// source seeded with seed.
func (p *Painter) Reset(seed int64) {
	n := p.canvas.N
	p.seed = seed
	p.src = rng.NewRNG(seed)
	p.canvas = core.NewCanvas(n)
	p.order = Positions(n, p.src)
	p.next = 0
	p.last = Visit{}
	p.hasLast = false
}

// Advance paints the next cell of the order and returns what it did.
func (p *Painter) Advance() (Visit, error) {
	if p.Done() {
		return Visit{}, errors.New("painting already complete")
	}
	i := p.next
	pos := p.order[i]
	r := Radius(i, len(p.order), p.canvas.N)
	p.buf = AppendNeighbors(p.buf[:0], p.canvas, pos, r)
	col := Refine(p.canvas, p.buf, p.src)
	if err := p.canvas.Fill(pos, col); err != nil {
		return Visit{}, err
	}
	p.next++
	p.last = Visit{Index: i, Pos: pos, Radius: r, Neighbors: len(p.buf), Color: col}
	p.hasLast = true
	return p.last, nil
}

// Step advances the painting by one cell. It is a no-op once complete.
func (p *Painter) Step() error {
	if p.Done() {
		return nil
	}
	_, err := p.Advance()
	return err
}

// Run paints all remaining cells and returns the finished grid.
func (p *Painter) Run() (*core.ColorGrid, error) {
	return p.RunWithProgress(nil)
}

// RunWithProgress is Run calling fn after every painted cell.
func (p *Painter) RunWithProgress(fn func(Visit)) (*core.ColorGrid, error) {
	for !p.Done() {
		v, err := p.Advance()
		if err != nil {
			return nil, err
		}
		if fn != nil {
			fn(v)
		}
	}
	return p.canvas.Colors()
}
