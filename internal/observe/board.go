// Package observe provides search.Observer implementations for hosts:
// a headless board, an event recorder, pacing, logging and fan-out.
package observe

import (
	"sync"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

// Board keeps the last state painted on every cell. It is the headless
// counterpart of a drawing surface and is safe for concurrent use.
type Board struct {
	mu     sync.RWMutex
	size   int
	states []search.State
}

// NewBoard creates an all-empty size x size board
func NewBoard(size int) *Board {
	if size <= 0 {
		size = grid.DefaultSize
	}
	return &Board{
		size:   size,
		states: make([]search.State, size*size),
	}
}

// OnCellStateChanged implements search.Observer. Cells off the board are ignored.
func (b *Board) OnCellStateChanged(cell grid.Cell, state search.State) {
	if !b.inBounds(cell) {
		return
	}
	b.mu.Lock()
	b.states[cell.Row*b.size+cell.Col] = state
	b.mu.Unlock()
}

func (b *Board) inBounds(c grid.Cell) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// Size returns the side length of the board
func (b *Board) Size() int {
	return b.size
}

// State returns the state of a cell, Empty when off the board
func (b *Board) State(c grid.Cell) search.State {
	if !b.inBounds(c) {
		return search.Empty
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.states[c.Row*b.size+c.Col]
}

// Count returns how many cells currently show state
func (b *Board) Count(state search.State) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, s := range b.states {
		if s == state {
			n++
		}
	}
	return n
}

// Reset paints every cell Empty
func (b *Board) Reset() {
	b.mu.Lock()
	clear(b.states)
	b.mu.Unlock()
}
