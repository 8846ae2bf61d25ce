package observe

import (
	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

// Tee fans every event out to each observer in order
type Tee []search.Observer

// OnCellStateChanged implements search.Observer
func (t Tee) OnCellStateChanged(cell grid.Cell, state search.State) {
	for _, obs := range t {
		if obs != nil {
			obs.OnCellStateChanged(cell, state)
		}
	}
}

// OnDepthStarted implements search.DepthObserver
func (t Tee) OnDepthStarted(depth int) {
	for _, obs := range t {
		forwardDepth(obs, depth)
	}
}
