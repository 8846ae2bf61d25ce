package observe

import (
	"time"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

// Pacer slows a search down for display. It forwards each event to Next,
// then waits Delay after an Explored cell and Delay/2 after a Path cell.
type Pacer struct {
	Next  search.Observer
	Delay time.Duration

	// Sleep defaults to time.Sleep
	Sleep func(time.Duration)
}

// NewPacer wraps next with the given per-step delay
func NewPacer(next search.Observer, delay time.Duration) *Pacer {
	return &Pacer{Next: next, Delay: delay}
}

// OnCellStateChanged implements search.Observer
func (p *Pacer) OnCellStateChanged(cell grid.Cell, state search.State) {
	if p.Next != nil {
		p.Next.OnCellStateChanged(cell, state)
	}
	if p.Delay <= 0 {
		return
	}

	switch state {
	case search.Explored:
		p.sleep(p.Delay)
	case search.Path:
		p.sleep(p.Delay / 2)
	}
}

// OnDepthStarted forwards to Next when it tracks depths
func (p *Pacer) OnDepthStarted(depth int) {
	forwardDepth(p.Next, depth)
}

func (p *Pacer) sleep(d time.Duration) {
	if p.Sleep != nil {
		p.Sleep(d)
		return
	}
	time.Sleep(d)
}

func forwardDepth(obs search.Observer, depth int) {
	if d, ok := obs.(search.DepthObserver); ok {
		d.OnDepthStarted(depth)
	}
}
