package observe

import (
	"sync"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

// Event is one recorded cell transition
type Event struct {
	Cell  grid.Cell    `json:"cell"`
	State search.State `json:"state"`
}

// Recorder keeps every event in arrival order
type Recorder struct {
	mu     sync.Mutex
	events []Event
	depths []int
}

// OnCellStateChanged implements search.Observer
func (r *Recorder) OnCellStateChanged(cell grid.Cell, state search.State) {
	r.mu.Lock()
	r.events = append(r.events, Event{Cell: cell, State: state})
	r.mu.Unlock()
}

// OnDepthStarted implements search.DepthObserver
func (r *Recorder) OnDepthStarted(depth int) {
	r.mu.Lock()
	r.depths = append(r.depths, depth)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Depths returns the IDDFS limits seen so far
func (r *Recorder) Depths() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.depths...)
}

// Len returns the number of recorded events
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Replay sends every recorded event to obs
func (r *Recorder) Replay(obs search.Observer) {
	for _, e := range r.Events() {
		obs.OnCellStateChanged(e.Cell, e.State)
	}
}
