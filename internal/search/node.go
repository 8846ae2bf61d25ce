package search

import "github.com/pfrederiksen/pathfinder/internal/grid"

// nodeID indexes a node in the run's arena
type nodeID int32

// root marks a node with no parent
const root nodeID = -1

// node is one traversal record. Frontier and explored bookkeeping keys on
// cell alone, so two nodes at the same cell with different costs collide.
type node struct {
	cell   grid.Cell
	cost   float64
	parent nodeID
}

// arena owns every node created during a run. Parents are referenced by
// index, so a chain stays intact until the arena is dropped.
type arena struct {
	nodes []node
}

func (a *arena) add(n node) nodeID {
	a.nodes = append(a.nodes, n)
	return nodeID(len(a.nodes) - 1)
}

func (a *arena) at(id nodeID) node {
	return a.nodes[id]
}

func (a *arena) reset() {
	a.nodes = a.nodes[:0]
}

// expand returns the candidate children of id in compass order.
// Callers decide which ones to keep.
func (a *arena) expand(g *grid.Grid, id nodeID) []node {
	parent := a.nodes[id]
	neighbors := g.Neighbors(parent.cell)
	children := make([]node, 0, len(neighbors))
	for _, n := range neighbors {
		children = append(children, node{
			cell:   n.Cell,
			cost:   parent.cost + n.Cost,
			parent: id,
		})
	}
	return children
}

// chain walks from id to its root, id first
func (a *arena) chain(id nodeID) []grid.Cell {
	var cells []grid.Cell
	for id != root {
		n := a.nodes[id]
		cells = append(cells, n.cell)
		id = n.parent
	}
	return cells
}

// path reconstructs the root-to-id path
func (a *arena) path(id nodeID) []grid.Cell {
	cells := a.chain(id)
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// merge joins a forward node and a backward node that sit on the same cell.
// The forward chain keeps the meeting cell; the backward half starts at the
// backward node's parent so the cell appears once.
func (a *arena) merge(forward, backward nodeID) []grid.Cell {
	path := a.path(forward)
	if parent := a.nodes[backward].parent; parent != root {
		path = append(path, a.chain(parent)...)
	}
	return path
}
