package grid

import "math"

// Move costs on the 8-connected grid
const (
	OrthogonalCost = 1.0
	DiagonalCost   = 1.4
)

// Direction is a (row, col) offset to an adjacent cell
type Direction struct {
	DR, DC int
}

// Diagonal reports whether both components are non-zero
func (d Direction) Diagonal() bool {
	return d.DR != 0 && d.DC != 0
}

// Cost is the price of one move in this direction
func (d Direction) Cost() float64 {
	if d.Diagonal() {
		return DiagonalCost
	}
	return OrthogonalCost
}

// Directions lists the compass moves clockwise from up.
// Search results depend on this order; do not reorder.
var Directions = [8]Direction{
	{-1, 0},  // up
	{-1, 1},  // up-right
	{0, 1},   // right
	{1, 1},   // down-right
	{1, 0},   // down
	{1, -1},  // down-left
	{0, -1},  // left
	{-1, -1}, // up-left
}

// Neighbor is a traversable adjacent cell and the cost of stepping onto it
type Neighbor struct {
	Cell Cell
	Cost float64
}

// Neighbors returns the free in-bounds neighbors of c in Directions order.
// No visited filtering happens here.
func (g *Grid) Neighbors(c Cell) []Neighbor {
	neighbors := make([]Neighbor, 0, len(Directions))
	for _, d := range Directions {
		next := Cell{Row: c.Row + d.DR, Col: c.Col + d.DC}
		if !g.Free(next) {
			continue
		}
		neighbors = append(neighbors, Neighbor{Cell: next, Cost: d.Cost()})
	}
	return neighbors
}

// Adjacent reports whether a and b are distinct 8-connected neighbors
func Adjacent(a, b Cell) bool {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	return dr <= 1 && dc <= 1 && (dr != 0 || dc != 0)
}

// MoveCost returns the cost of a single move from a to b, or +Inf if not adjacent
func MoveCost(a, b Cell) float64 {
	if !Adjacent(a, b) {
		return math.Inf(1)
	}
	return Direction{DR: b.Row - a.Row, DC: b.Col - a.Col}.Cost()
}

// PathCost sums the move costs along path
func PathCost(path []Cell) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += MoveCost(path[i-1], path[i])
	}
	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
