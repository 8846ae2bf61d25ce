package search

import (
	"gopkg.in/karalabe/cookiejar.v2/collections/queue"

	"github.com/pfrederiksen/pathfinder/internal/grid"
)

// bidirectional alternates one FIFO step from the start with one FIFO step
// from the target until a popped cell has been seen by the other side.
func (r *run) bidirectional() (Result, error) {
	forwardRoot := r.nodes.add(node{cell: r.start, parent: root})
	backwardRoot := r.nodes.add(node{cell: r.target, parent: root})

	forward := queue.New()
	forward.Push(forwardRoot)
	backward := queue.New()
	backward.Push(backwardRoot)

	// cell -> node that discovered it, per direction
	seenForward := map[grid.Cell]nodeID{r.start: forwardRoot}
	seenBackward := map[grid.Cell]nodeID{r.target: backwardRoot}

	for !forward.Empty() && !backward.Empty() {
		if err := r.interrupted(); err != nil {
			return Result{}, err
		}

		id := forward.Pop().(nodeID)
		current := r.nodes.at(id)
		r.explore(current.cell)

		if meet, ok := seenBackward[current.cell]; ok {
			return r.found(r.nodes.merge(id, meet)), nil
		}

		for _, child := range r.nodes.expand(r.g, id) {
			if _, seen := seenForward[child.cell]; seen {
				continue
			}
			childID := r.nodes.add(child)
			seenForward[child.cell] = childID
			forward.Push(childID)
			if _, other := seenBackward[child.cell]; child.cell != r.target && !other {
				r.obs.OnCellStateChanged(child.cell, Frontier)
			}
		}

		id = backward.Pop().(nodeID)
		current = r.nodes.at(id)
		r.explore(current.cell)

		if meet, ok := seenForward[current.cell]; ok {
			return r.found(r.nodes.merge(meet, id)), nil
		}

		for _, child := range r.nodes.expand(r.g, id) {
			if _, seen := seenBackward[child.cell]; seen {
				continue
			}
			childID := r.nodes.add(child)
			seenBackward[child.cell] = childID
			backward.Push(childID)
			if _, other := seenForward[child.cell]; child.cell != r.start && !other {
				r.obs.OnCellStateChanged(child.cell, Frontier)
			}
		}
	}

	return r.finish(NotFound), nil
}
