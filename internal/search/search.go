package search

import (
	"context"
	"fmt"

	"github.com/pfrederiksen/pathfinder/internal/grid"
)

// Searcher runs searches over one grid
type Searcher struct {
	grid *grid.Grid
	opts Options
}

// New creates a Searcher. A nil opts selects DefaultOptions.
func New(g *grid.Grid, opts *Options) *Searcher {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	return &Searcher{
		grid: g,
		opts: o,
	}
}

// Grid returns the grid being searched
func (s *Searcher) Grid() *grid.Grid {
	return s.grid
}

// Validate checks the run preconditions without searching
func (s *Searcher) Validate(start, target grid.Cell) error {
	if s.grid == nil {
		return fmt.Errorf("%w: no grid", ErrInvalidInput)
	}
	if err := s.checkEndpoint("start", start); err != nil {
		return err
	}
	if err := s.checkEndpoint("target", target); err != nil {
		return err
	}
	if s.opts.DepthLimit < 0 {
		return fmt.Errorf("%w: negative depth limit %d", ErrInvalidInput, s.opts.DepthLimit)
	}
	return nil
}

func (s *Searcher) checkEndpoint(name string, c grid.Cell) error {
	if !s.grid.InBounds(c) {
		return fmt.Errorf("%w: %s %v is outside the %dx%d grid", ErrInvalidInput, name, c, s.grid.Size(), s.grid.Size())
	}
	if s.grid.Blocked(c) {
		return fmt.Errorf("%w: %s %v is blocked", ErrInvalidInput, name, c)
	}
	return nil
}

// Search runs alg from start to target, pushing step events to obs.
// A nil obs discards events. ctx is polled between expansion steps and its
// error is returned if it is done before the search finishes.
func (s *Searcher) Search(ctx context.Context, alg Algorithm, start, target grid.Cell, obs Observer) (Result, error) {
	if err := s.Validate(start, target); err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if obs == nil {
		obs = NopObserver{}
	}

	r := &run{
		ctx:    ctx,
		alg:    alg,
		g:      s.grid,
		start:  start,
		target: target,
		obs:    obs,
	}

	switch alg {
	case BFS:
		return r.bfs()
	case DFS:
		return r.dfs()
	case UCS:
		return r.ucs()
	case DLS:
		return r.dls(s.opts.DepthLimit)
	case IDDFS:
		maxDepth := s.opts.MaxDepth
		if maxDepth <= 0 {
			maxDepth = 2 * s.grid.Size()
		}
		return r.iddfs(maxDepth)
	case Bidirectional:
		return r.bidirectional()
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
}

// run holds the state owned by a single search
type run struct {
	ctx           context.Context
	alg           Algorithm
	g             *grid.Grid
	start, target grid.Cell
	obs           Observer
	nodes         arena
	expanded      int
}

// interrupted reports the context error once the caller gives up
func (r *run) interrupted() error {
	select {
	case <-r.ctx.Done():
		return r.ctx.Err()
	default:
		return nil
	}
}

// explore records c entering the explored state. Endpoints keep their colour.
func (r *run) explore(c grid.Cell) {
	r.expanded++
	if c != r.start && c != r.target {
		r.obs.OnCellStateChanged(c, Explored)
	}
}

// discover records c entering the frontier. The target is never recoloured.
func (r *run) discover(c grid.Cell) {
	if c != r.target {
		r.obs.OnCellStateChanged(c, Frontier)
	}
}

func (r *run) found(path []grid.Cell) Result {
	return Result{
		Algorithm: r.alg,
		Outcome:   Found,
		Path:      path,
		Cost:      grid.PathCost(path),
		Expanded:  r.expanded,
	}
}

func (r *run) finish(o Outcome) Result {
	return Result{
		Algorithm: r.alg,
		Outcome:   o,
		Expanded:  r.expanded,
	}
}
