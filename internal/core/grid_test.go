package core

import (
	"errors"
	"testing"
	"time"
)

func TestCanvasWrap(t *testing.T) {
	c := NewCanvas(5)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{-1, -1, 4, 4},
		{5, 6, 0, 1},
		{-11, 12, 4, 2},
	}
	for _, tc := range cases {
		x, y := c.Wrap(tc.x, tc.y)
		if x != tc.wx || y != tc.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestCanvasFillIsWriteOnce(t *testing.T) {
	c := NewCanvas(3)
	p := Position{X: 1, Y: 2}
	if err := c.Fill(p, Color{1, 2, 3}); err != nil {
		t.Fatalf("first fill failed: %v", err)
	}
	err := c.Fill(p, Color{9, 9, 9})
	if !errors.Is(err, ErrCellFilled) {
		t.Fatalf("second fill returned %v, expected ErrCellFilled", err)
	}
	if got := c.At(p).Color; got != (Color{1, 2, 3}) {
		t.Fatalf("filled color changed to %v", got)
	}
	if c.FilledCount() != 1 {
		t.Fatalf("filled count %d, expected 1", c.FilledCount())
	}
}

func TestCanvasColorsRejectsEmptyCells(t *testing.T) {
	c := NewCanvas(2)
	_ = c.Fill(Position{X: 0, Y: 0}, Color{})
	_ = c.Fill(Position{X: 1, Y: 0}, Color{})
	_ = c.Fill(Position{X: 0, Y: 1}, Color{})

	if _, err := c.Colors(); !errors.Is(err, ErrUnfilled) {
		t.Fatalf("Colors on partial canvas returned %v, expected ErrUnfilled", err)
	}

	_ = c.Fill(Position{X: 1, Y: 1}, Color{10, 20, 30})
	g, err := c.Colors()
	if err != nil {
		t.Fatalf("Colors on full canvas failed: %v", err)
	}
	if got := g.At(1, 1); got != (Color{10, 20, 30}) {
		t.Fatalf("grid (1,1) = %v", got)
	}
}

func TestEmptyCanvasConverts(t *testing.T) {
	g, err := NewCanvas(0).Colors()
	if err != nil {
		t.Fatalf("empty canvas conversion failed: %v", err)
	}
	if g.N != 0 || len(g.Colors()) != 0 {
		t.Fatalf("expected empty grid, got N=%d len=%d", g.N, len(g.Colors()))
	}
}

func TestThrottle(t *testing.T) {
	now := time.Unix(100, 0)
	th := NewThrottle(time.Second)
	th.now = func() time.Time { return now }

	if th.Ready() {
		t.Fatal("first call should only start the clock")
	}
	now = now.Add(500 * time.Millisecond)
	if th.Ready() {
		t.Fatal("throttle fired before the interval elapsed")
	}
	now = now.Add(600 * time.Millisecond)
	if !th.Ready() {
		t.Fatal("throttle did not fire after the interval")
	}
	if th.Ready() {
		t.Fatal("throttle fired twice without time passing")
	}

	off := NewThrottle(0)
	if off.Ready() || off.Ready() {
		t.Fatal("disabled throttle fired")
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Grid",
		Params: []Parameter{IntParam("n", "Size", 12), FloatParam("fill", "Fill", 0.25)},
	}}}
	p, ok := snap.Lookup("fill")
	if !ok || p.Value != "0.250" {
		t.Fatalf("lookup fill = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("lookup of missing key succeeded")
	}
}
