package search

import (
	"fmt"

	"github.com/pfrederiksen/pathfinder/internal/grid"
)

// State is the display state of a cell
type State int

const (
	Empty State = iota
	Start
	Target
	Frontier
	Explored
	Path
)

var stateNames = [...]string{
	Empty:    "empty",
	Start:    "start",
	Target:   "target",
	Frontier: "frontier",
	Explored: "explored",
	Path:     "path",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// MarshalText implements encoding.TextMarshaler
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *State) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown cell state %q", text)
}

// Observer receives cell state transitions while a search runs.
// Calls are synchronous; a host may pace or yield inside them.
type Observer interface {
	OnCellStateChanged(cell grid.Cell, state State)
}

// DepthObserver is implemented by observers that want to know when IDDFS
// starts a new depth limit.
type DepthObserver interface {
	OnDepthStarted(depth int)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(cell grid.Cell, state State)

// OnCellStateChanged calls f(cell, state)
func (f ObserverFunc) OnCellStateChanged(cell grid.Cell, state State) {
	f(cell, state)
}

// NopObserver discards every notification
type NopObserver struct{}

// OnCellStateChanged does nothing
func (NopObserver) OnCellStateChanged(grid.Cell, State) {}

// Prime paints the start and target cells before a run
func Prime(obs Observer, start, target grid.Cell) {
	obs.OnCellStateChanged(start, Start)
	obs.OnCellStateChanged(target, Target)
}

// Trace paints a found path, leaving its endpoints alone
func Trace(obs Observer, path []grid.Cell) {
	if len(path) < 3 {
		return
	}
	for _, c := range path[1 : len(path)-1] {
		obs.OnCellStateChanged(c, Path)
	}
}
