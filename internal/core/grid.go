package core

import (
	"errors"
	"fmt"
)

var (
	// ErrCellFilled is returned when a filled cell would be written again.
	ErrCellFilled = errors.New("cell already filled")
	// ErrUnfilled is returned when an empty cell is found where a color is required.
	ErrUnfilled = errors.New("cell not filled")
)

// Color holds three independent 8-bit channels, passed through as R, G, B.
type Color [3]uint8

// Cell is a canvas slot. A cell with Filled unset is empty and its Color is meaningless.
type Cell struct {
	Color  Color
	Filled bool
}

// Canvas stores an N×N grid of write-once cells in row-major order with
// toroidal adjacency.
type Canvas struct {
	N      int
	cells  []Cell
	filled int
}

// NewCanvas allocates an empty canvas of side n. Negative sizes are treated as zero.
func NewCanvas(n int) *Canvas {
	if n < 0 {
		n = 0
	}
	return &Canvas{N: n, cells: make([]Cell, n*n)}
}

// Cells exposes the backing slice for read-only rendering.
func (c *Canvas) Cells() []Cell { return c.cells }

// Index returns the linear slice index for coordinates (x, y).
func (c *Canvas) Index(x, y int) int { return y*c.N + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (c *Canvas) Wrap(x, y int) (int, int) {
	x = (x%c.N + c.N) % c.N
	y = (y%c.N + c.N) % c.N
	return x, y
}

// At returns the cell at p. p must already be wrapped.
func (c *Canvas) At(p Position) Cell { return c.cells[c.Index(p.X, p.Y)] }

// Fill commits col at p. Filling a cell twice fails with ErrCellFilled.
func (c *Canvas) Fill(p Position, col Color) error {
	idx := c.Index(p.X, p.Y)
	if c.cells[idx].Filled {
		return fmt.Errorf("fill %v: %w", p, ErrCellFilled)
	}
	c.cells[idx] = Cell{Color: col, Filled: true}
	c.filled++
	return nil
}

// FilledCount reports how many cells hold a color.
func (c *Canvas) FilledCount() int { return c.filled }

// Colors converts a completely filled canvas into a ColorGrid. Any empty cell
// is reported as ErrUnfilled.
func (c *Canvas) Colors() (*ColorGrid, error) {
	g := NewColorGrid(c.N)
	for i, cell := range c.cells {
		if !cell.Filled {
			return nil, fmt.Errorf("convert canvas at %v: %w", Position{X: i % c.N, Y: i / c.N}, ErrUnfilled)
		}
		g.data[i] = cell.Color
	}
	return g, nil
}

// ColorGrid is a fully populated N×N grid of colors in row-major order.
type ColorGrid struct {
	N    int
	data []Color
}

// NewColorGrid allocates a black grid of side n.
func NewColorGrid(n int) *ColorGrid {
	if n < 0 {
		n = 0
	}
	return &ColorGrid{N: n, data: make([]Color, n*n)}
}

// Colors exposes the backing slice so callers can read/write values directly.
func (g *ColorGrid) Colors() []Color { return g.data }

// At returns the color at (x, y).
func (g *ColorGrid) At(x, y int) Color { return g.data[y*g.N+x] }

// Set stores col at (x, y).
func (g *ColorGrid) Set(x, y int, col Color) { g.data[y*g.N+x] = col }
