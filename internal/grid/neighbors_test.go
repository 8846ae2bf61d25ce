package grid

import (
	"math"
	"testing"
)

func TestNeighborsOrder(t *testing.T) {
	g := New(3)
	got := g.Neighbors(Cell{1, 1})

	want := []Neighbor{
		{Cell{0, 1}, OrthogonalCost}, // up
		{Cell{0, 2}, DiagonalCost},   // up-right
		{Cell{1, 2}, OrthogonalCost}, // right
		{Cell{2, 2}, DiagonalCost},   // down-right
		{Cell{2, 1}, OrthogonalCost}, // down
		{Cell{2, 0}, DiagonalCost},   // down-left
		{Cell{1, 0}, OrthogonalCost}, // left
		{Cell{0, 0}, DiagonalCost},   // up-left
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d neighbors, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestNeighborsCornerAndWalls(t *testing.T) {
	g := New(3)
	g.SetBlocked(Cell{0, 1}, true)

	got := g.Neighbors(Cell{0, 0})
	// up, up-right, left, up-left are out of bounds; right is a wall
	want := []Cell{{1, 1}, {1, 0}}
	if len(got) != len(want) {
		t.Fatalf("expected %d neighbors, got %v", len(want), got)
	}
	for i, c := range want {
		if got[i].Cell != c {
			t.Errorf("neighbor %d = %v, want %v", i, got[i].Cell, c)
		}
	}
}

func TestMoveCost(t *testing.T) {
	tests := []struct {
		name string
		a, b Cell
		want float64
	}{
		{"orthogonal", Cell{0, 0}, Cell{0, 1}, 1.0},
		{"diagonal", Cell{0, 0}, Cell{1, 1}, 1.4},
		{"same cell", Cell{0, 0}, Cell{0, 0}, math.Inf(1)},
		{"two apart", Cell{0, 0}, Cell{0, 2}, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveCost(tt.a, tt.b); got != tt.want {
				t.Errorf("MoveCost() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathCost(t *testing.T) {
	path := []Cell{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}
	if got := PathCost(path); math.Abs(got-5.6) > 1e-9 {
		t.Errorf("PathCost() = %v, want 5.6", got)
	}
	if got := PathCost([]Cell{{0, 0}}); got != 0 {
		t.Errorf("PathCost() of single cell = %v, want 0", got)
	}
}

func TestRandomIsDeterministic(t *testing.T) {
	opts := RandomOptions{Density: 0.3, Seed: 42}
	keep := []Cell{{0, 0}, {9, 9}}

	a := Random(10, opts, keep...)
	b := Random(10, opts, keep...)

	if a.WallCount() == 0 {
		t.Fatal("expected some walls at density 0.3")
	}
	am, bm := a.Matrix(), b.Matrix()
	for r := range am {
		for c := range am[r] {
			if am[r][c] != bm[r][c] {
				t.Fatalf("grids differ at (%d,%d)", r, c)
			}
		}
	}
	for _, c := range keep {
		if a.Blocked(c) {
			t.Errorf("kept cell %v is blocked", c)
		}
	}
}

func TestRandomZeroDensity(t *testing.T) {
	if n := Random(8, RandomOptions{Density: 0, Seed: 1}).WallCount(); n != 0 {
		t.Errorf("expected no walls at density 0, got %d", n)
	}
}
