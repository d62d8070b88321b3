package core

import (
	"slices"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs for equal seeds: %d vs %d", i, x, y)
		}
	}
}

func TestRNGShufflePermutes(t *testing.T) {
	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng := NewRNG(3)
	rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("shuffle lost or duplicated values: %v", values)
		}
	}
}

func TestRNGIntNNonPositive(t *testing.T) {
	rng := NewRNG(1)
	if got := rng.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if got := rng.IntN(-3); got != 0 {
		t.Fatalf("IntN(-3) = %d, want 0", got)
	}
}
