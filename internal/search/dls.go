package search

import "github.com/pfrederiksen/pathfinder/internal/grid"

// limitedWalk is the state of one depth-limited traversal. The explored map
// is shared by every branch of the call tree and records the remaining
// budget each cell was expanded with.
type limitedWalk struct {
	r        *run
	explored map[grid.Cell]int
	// revisit lets a cell be entered again when reached with a strictly
	// larger remaining budget than it was expanded with. IDDFS sets it;
	// without it a cell first reached by a long branch hides the shorter
	// route, and IDDFS loses its fewest-moves result.
	revisit bool
	cutoff  bool
}

func newLimitedWalk(r *run, revisit bool) *limitedWalk {
	return &limitedWalk{
		r:        r,
		explored: make(map[grid.Cell]int),
		revisit:  revisit,
	}
}

// enterable reports whether a child may be visited with the given budget
func (w *limitedWalk) enterable(c grid.Cell, budget int) bool {
	prev, seen := w.explored[c]
	if !seen {
		return true
	}
	return w.revisit && budget > prev
}

// visit returns the goal node and true on success
func (w *limitedWalk) visit(id nodeID, limit int) (nodeID, bool, error) {
	if limit < 0 {
		w.cutoff = true
		return root, false, nil
	}
	if err := w.r.interrupted(); err != nil {
		return root, false, err
	}

	current := w.r.nodes.at(id)
	w.explored[current.cell] = limit
	w.r.explore(current.cell)

	if current.cell == w.r.target {
		return id, true, nil
	}

	for _, child := range w.r.nodes.expand(w.r.g, id) {
		// checked per child: earlier siblings may have explored it
		if !w.enterable(child.cell, limit-1) {
			continue
		}
		w.r.discover(child.cell)

		goal, ok, err := w.visit(w.r.nodes.add(child), limit-1)
		if err != nil || ok {
			return goal, ok, err
		}
	}
	return root, false, nil
}

// dls runs a single depth-limited search. A cell explored on one branch is
// never entered from another, so a path needing that cell at a shallower
// depth can be missed.
func (r *run) dls(limit int) (Result, error) {
	w := newLimitedWalk(r, false)
	goal, ok, err := w.visit(r.nodes.add(node{cell: r.start, parent: root}), limit)
	if err != nil {
		return Result{}, err
	}

	var res Result
	switch {
	case ok:
		res = r.found(r.nodes.path(goal))
	case w.cutoff:
		res = r.finish(Cutoff)
	default:
		res = r.finish(NotFound)
	}
	res.Depth = limit
	return res, nil
}

// iddfs sweeps depth limits 0..maxDepth-1 with a fresh explored map each
// time, returning the first success. A sweep that ends without a cutoff
// has exhausted the reachable cells, so deeper limits are not tried.
func (r *run) iddfs(maxDepth int) (Result, error) {
	depthObs, _ := r.obs.(DepthObserver)
	painted := &paintTracker{next: r.obs}
	r.obs = painted

	for depth := 0; depth < maxDepth; depth++ {
		painted.reset()
		if depthObs != nil {
			depthObs.OnDepthStarted(depth)
		}

		r.nodes.reset()
		w := newLimitedWalk(r, true)
		goal, ok, err := w.visit(r.nodes.add(node{cell: r.start, parent: root}), depth)
		if err != nil {
			return Result{}, err
		}

		if ok {
			res := r.found(r.nodes.path(goal))
			res.Depth = depth
			return res, nil
		}
		if !w.cutoff {
			res := r.finish(NotFound)
			res.Depth = depth
			return res, nil
		}
	}

	res := r.finish(Cutoff)
	res.Depth = maxDepth - 1
	return res, nil
}

// paintTracker remembers which cells an IDDFS iteration painted so the
// next iteration can hand the host a clean board.
type paintTracker struct {
	next    Observer
	painted map[grid.Cell]bool
	order   []grid.Cell
}

func (t *paintTracker) OnCellStateChanged(cell grid.Cell, state State) {
	if t.painted == nil {
		t.painted = make(map[grid.Cell]bool)
	}
	if !t.painted[cell] {
		t.painted[cell] = true
		t.order = append(t.order, cell)
	}
	t.next.OnCellStateChanged(cell, state)
}

func (t *paintTracker) reset() {
	for _, c := range t.order {
		t.next.OnCellStateChanged(c, Empty)
	}
	t.order = t.order[:0]
	clear(t.painted)
}
