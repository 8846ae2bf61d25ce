package search

import (
	"math"
	"testing"

	"github.com/pfrederiksen/pathfinder/internal/grid"
)

type event struct {
	cell  grid.Cell
	state State
}

// recorder captures every notification in order
type recorder struct {
	events []event
	depths []int
}

func (r *recorder) OnCellStateChanged(cell grid.Cell, state State) {
	r.events = append(r.events, event{cell, state})
}

func (r *recorder) OnDepthStarted(depth int) {
	r.depths = append(r.depths, depth)
}

func (r *recorder) count(state State) int {
	n := 0
	for _, e := range r.events {
		if e.state == state {
			n++
		}
	}
	return n
}

// cheapest returns the minimum path cost from a to b, or +Inf
func cheapest(g *grid.Grid, a, b grid.Cell) float64 {
	dist := map[grid.Cell]float64{a: 0}
	done := map[grid.Cell]bool{}
	for {
		var (
			best  grid.Cell
			found bool
		)
		for c, d := range dist {
			if done[c] {
				continue
			}
			if !found || d < dist[best] {
				best, found = c, true
			}
		}
		if !found {
			return math.Inf(1)
		}
		if best == b {
			return dist[best]
		}
		done[best] = true
		for _, n := range g.Neighbors(best) {
			nd := dist[best] + n.Cost
			if d, ok := dist[n.Cell]; !ok || nd < d {
				dist[n.Cell] = nd
			}
		}
	}
}

// checkPath fails t unless path is a simple walk of free adjacent cells
// from start to target.
func checkPath(t *testing.T, g *grid.Grid, path []grid.Cell, start, target grid.Cell) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("empty path")
	}
	if path[0] != start {
		t.Errorf("path starts at %v, want %v", path[0], start)
	}
	if path[len(path)-1] != target {
		t.Errorf("path ends at %v, want %v", path[len(path)-1], target)
	}
	seen := make(map[grid.Cell]bool)
	for i, c := range path {
		if !g.Free(c) {
			t.Errorf("path cell %v is not free", c)
		}
		if seen[c] {
			t.Errorf("path visits %v twice", c)
		}
		seen[c] = true
		if i > 0 && !grid.Adjacent(path[i-1], c) {
			t.Errorf("path step %v -> %v is not a move", path[i-1], c)
		}
	}
}

func equalPaths(a, b []grid.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// wallRow blocks row r except the listed columns
func wallRow(g *grid.Grid, r int, gaps ...int) {
	open := make(map[int]bool)
	for _, c := range gaps {
		open[c] = true
	}
	for c := 0; c < g.Size(); c++ {
		if !open[c] {
			g.SetBlocked(grid.Cell{Row: r, Col: c}, true)
		}
	}
}
