package grid

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// DefaultSize is the side length of a grid when none is given
const DefaultSize = 15

// ErrShape is returned when a matrix or row set is not square
var ErrShape = errors.New("grid: matrix must be square and non-empty")

// Cell is a (row, col) coordinate, 0-indexed
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String renders the cell as (row,col)
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a fixed-size square occupancy matrix
type Grid struct {
	mu      sync.RWMutex
	size    int
	blocked []bool // row-major, true = wall
}

// New creates an empty size x size grid
func New(size int) *Grid {
	if size <= 0 {
		size = DefaultSize
	}
	return &Grid{
		size:    size,
		blocked: make([]bool, size*size),
	}
}

// FromMatrix builds a grid from a square matrix where true marks a blocked cell
func FromMatrix(m [][]bool) (*Grid, error) {
	n := len(m)
	if n == 0 {
		return nil, ErrShape
	}
	g := New(n)
	for r, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", r, len(row), n, ErrShape)
		}
		for c, b := range row {
			g.blocked[r*n+c] = b
		}
	}
	return g, nil
}

// FromRows parses an ascii picture of a grid.
// '#' is a wall, 'S' and 'T' mark start and target, anything else is free.
// The returned cells are nil when the marker is absent.
func FromRows(rows []string) (g *Grid, start, target *Cell, err error) {
	n := len(rows)
	if n == 0 {
		return nil, nil, nil, ErrShape
	}
	g = New(n)
	for r, row := range rows {
		row = strings.TrimRight(row, "\r")
		if len([]rune(row)) != n {
			return nil, nil, nil, fmt.Errorf("row %d has %d columns, want %d: %w", r, len([]rune(row)), n, ErrShape)
		}
		for c, ch := range []rune(row) {
			switch ch {
			case '#':
				g.blocked[r*n+c] = true
			case 'S', 's':
				start = &Cell{Row: r, Col: c}
			case 'T', 't':
				target = &Cell{Row: r, Col: c}
			}
		}
	}
	return g, start, target, nil
}

// Size returns the side length
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c lies on the grid
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Blocked reports whether c is a wall. Out-of-bounds cells count as blocked.
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.blocked[c.Row*g.size+c.Col]
}

// Free reports whether c is in bounds and not a wall
func (g *Grid) Free(c Cell) bool {
	return !g.Blocked(c)
}

// SetBlocked marks or clears a wall. Out-of-bounds cells are ignored.
func (g *Grid) SetBlocked(c Cell, blocked bool) {
	if !g.InBounds(c) {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.blocked[c.Row*g.size+c.Col] = blocked
}

// Clear removes every wall
func (g *Grid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.blocked {
		g.blocked[i] = false
	}
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := New(g.size)
	copy(c.blocked, g.blocked)
	return c
}

// Matrix returns the occupancy flags as a fresh [][]bool
func (g *Grid) Matrix() [][]bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m := make([][]bool, g.size)
	for r := range m {
		m[r] = make([]bool, g.size)
		copy(m[r], g.blocked[r*g.size:(r+1)*g.size])
	}
	return m
}

// Walls returns all blocked cells in row-major order
func (g *Grid) Walls() []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var walls []Cell
	for i, b := range g.blocked {
		if b {
			walls = append(walls, Cell{Row: i / g.size, Col: i % g.size})
		}
	}
	return walls
}

// WallCount returns the number of blocked cells
func (g *Grid) WallCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}
