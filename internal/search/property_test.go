package search

import (
	"context"
	"math"
	"testing"

	"github.com/pfrederiksen/pathfinder/internal/grid"
)

func TestRandomGridProperties(t *testing.T) {
	const size = 8
	start, target := grid.Cell{}, grid.Cell{Row: size - 1, Col: size - 1}

	for seed := int64(1); seed <= 150; seed++ {
		g := grid.Random(size, grid.RandomOptions{Density: 0.45, Seed: seed}, start, target)
		s := New(g, nil)

		dist := g.Distance(start, target)
		cost := cheapest(g, start, target)
		reachable := dist >= 0

		results := make(map[Algorithm]Result)
		for _, alg := range Algorithms() {
			res, err := s.Search(context.Background(), alg, start, target, nil)
			if err != nil {
				t.Fatalf("seed %d %v: unexpected error: %v", seed, alg, err)
			}
			if res.Found() {
				checkPath(t, g, res.Path, start, target)
				if math.Abs(res.Cost-grid.PathCost(res.Path)) > 1e-9 {
					t.Errorf("seed %d %v: cost %v does not match its path", seed, alg, res.Cost)
				}
			}
			results[alg] = res
		}

		for _, alg := range []Algorithm{BFS, DFS, UCS, Bidirectional} {
			if results[alg].Found() != reachable {
				t.Errorf("seed %d %v: found = %v, reachable = %v", seed, alg, results[alg].Found(), reachable)
			}
		}
		if !reachable {
			if results[IDDFS].Found() || results[DLS].Found() {
				t.Errorf("seed %d: depth-bounded search found an unreachable target", seed)
			}
			continue
		}

		if got := len(results[BFS].Path) - 1; got != dist {
			t.Errorf("seed %d: BFS took %d moves, want %d", seed, got, dist)
		}
		if got := results[UCS].Cost; math.Abs(got-cost) > 1e-9 {
			t.Errorf("seed %d: UCS cost %v, want %v", seed, got, cost)
		}
		for _, alg := range Algorithms() {
			if res := results[alg]; res.Found() && res.Cost < cost-1e-9 {
				t.Errorf("seed %d %v: cost %v beats the optimum %v", seed, alg, res.Cost, cost)
			}
		}

		iddfs := results[IDDFS]
		if dist < 2*size {
			if !iddfs.Found() {
				t.Errorf("seed %d: IDDFS missed a target %d moves away (%v)", seed, dist, iddfs.Outcome)
			} else if got := len(iddfs.Path) - 1; got != dist {
				t.Errorf("seed %d: IDDFS took %d moves, want %d", seed, got, dist)
			}
		} else if iddfs.Found() {
			t.Errorf("seed %d: IDDFS found a path beyond its depth ceiling", seed)
		}

		if dls := results[DLS]; dls.Found() && len(dls.Path)-1 > DefaultDepthLimit {
			t.Errorf("seed %d: DLS path of %d moves exceeds its limit", seed, len(dls.Path)-1)
		}
	}
}

func TestRandomGridExploresEachCellOnce(t *testing.T) {
	start, target := grid.Cell{}, grid.Cell{Row: 9, Col: 9}

	for seed := int64(1); seed <= 30; seed++ {
		g := grid.Random(10, grid.RandomOptions{Density: 0.4, Seed: seed}, start, target)
		for _, alg := range []Algorithm{BFS, DFS, UCS} {
			rec := &recorder{}
			res, err := New(g, nil).Search(context.Background(), alg, start, target, rec)
			if err != nil {
				t.Fatalf("seed %d %v: unexpected error: %v", seed, alg, err)
			}
			explored := make(map[grid.Cell]bool)
			for _, e := range rec.events {
				if e.state != Explored {
					continue
				}
				if explored[e.cell] {
					t.Errorf("seed %d %v: %v explored twice", seed, alg, e.cell)
				}
				explored[e.cell] = true
			}
			// Expanded also counts the endpoints, which are never painted.
			endpoints := 1
			if res.Found() {
				endpoints = 2
			}
			if res.Expanded != len(explored)+endpoints {
				t.Errorf("seed %d %v: expanded %d, painted %d", seed, alg, res.Expanded, len(explored))
			}
		}
	}
}
