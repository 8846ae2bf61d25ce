package search

import (
	"gopkg.in/karalabe/cookiejar.v2/collections/stack"

	"github.com/pfrederiksen/pathfinder/internal/grid"
)

// dfs expands cells from an explicit stack. A cell may be pushed several
// times; later copies are skipped once it has been explored.
func (r *run) dfs() (Result, error) {
	frontier := stack.New()
	frontier.Push(r.nodes.add(node{cell: r.start, parent: root}))

	explored := make(map[grid.Cell]bool)

	for !frontier.Empty() {
		if err := r.interrupted(); err != nil {
			return Result{}, err
		}

		id := frontier.Pop().(nodeID)
		current := r.nodes.at(id)
		if explored[current.cell] {
			continue
		}

		explored[current.cell] = true
		r.explore(current.cell)

		if current.cell == r.target {
			return r.found(r.nodes.path(id)), nil
		}

		// Push in reverse so the first compass direction is popped first.
		children := r.nodes.expand(r.g, id)
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			if explored[child.cell] {
				continue
			}
			frontier.Push(r.nodes.add(child))
			r.discover(child.cell)
		}
	}

	return r.finish(NotFound), nil
}
