package search

import (
	"container/heap"

	"github.com/pfrederiksen/pathfinder/internal/grid"
)

type frontierItem struct {
	id    nodeID
	cost  float64
	seq   int // insertion order, breaks cost ties
	index int
}

// frontierQueue is a min-heap on cost, stable on insertion order
type frontierQueue []*frontierItem

func (q frontierQueue) Len() int { return len(q) }
func (q frontierQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].seq < q[j].seq
}
func (q frontierQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontierQueue) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *frontierQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// ucs pops the cheapest node first. The first time the target is popped its
// cost is minimal because every move cost is positive.
func (r *run) ucs() (Result, error) {
	frontier := make(frontierQueue, 0)
	heap.Init(&frontier)

	seq := 0
	push := func(n node) {
		heap.Push(&frontier, &frontierItem{id: r.nodes.add(n), cost: n.cost, seq: seq})
		seq++
	}
	push(node{cell: r.start, parent: root})

	explored := make(map[grid.Cell]bool)
	bestCost := map[grid.Cell]float64{r.start: 0}

	for frontier.Len() > 0 {
		if err := r.interrupted(); err != nil {
			return Result{}, err
		}

		item := heap.Pop(&frontier).(*frontierItem)
		current := r.nodes.at(item.id)
		if explored[current.cell] {
			continue
		}

		explored[current.cell] = true
		r.explore(current.cell)

		if current.cell == r.target {
			return r.found(r.nodes.path(item.id)), nil
		}

		for _, child := range r.nodes.expand(r.g, item.id) {
			if explored[child.cell] {
				continue
			}
			if best, ok := bestCost[child.cell]; ok && child.cost >= best {
				continue
			}
			bestCost[child.cell] = child.cost
			push(child)
			r.discover(child.cell)
		}
	}

	return r.finish(NotFound), nil
}
