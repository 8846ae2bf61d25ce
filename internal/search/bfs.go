package search

import (
	"gopkg.in/karalabe/cookiejar.v2/collections/queue"

	"github.com/pfrederiksen/pathfinder/internal/grid"
)

// bfs expands cells in FIFO order. The returned path has the fewest moves.
func (r *run) bfs() (Result, error) {
	frontier := queue.New()
	frontier.Push(r.nodes.add(node{cell: r.start, parent: root}))

	explored := make(map[grid.Cell]bool)
	inFrontier := map[grid.Cell]bool{r.start: true}

	for !frontier.Empty() {
		if err := r.interrupted(); err != nil {
			return Result{}, err
		}

		id := frontier.Pop().(nodeID)
		current := r.nodes.at(id)

		explored[current.cell] = true
		delete(inFrontier, current.cell)
		r.explore(current.cell)

		if current.cell == r.target {
			return r.found(r.nodes.path(id)), nil
		}

		for _, child := range r.nodes.expand(r.g, id) {
			if explored[child.cell] || inFrontier[child.cell] {
				continue
			}
			frontier.Push(r.nodes.add(child))
			inFrontier[child.cell] = true
			r.discover(child.cell)
		}
	}

	return r.finish(NotFound), nil
}
