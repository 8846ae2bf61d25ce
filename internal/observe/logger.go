package observe

import (
	"context"
	"log/slog"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

// Logger writes every transition to a slog.Logger at debug level and
// passes it on to Next.
type Logger struct {
	Next search.Observer
	Log  *slog.Logger
}

// NewLogger wraps next. A nil log uses slog.Default.
func NewLogger(next search.Observer, log *slog.Logger) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{Next: next, Log: log}
}

// OnCellStateChanged implements search.Observer
func (l *Logger) OnCellStateChanged(cell grid.Cell, state search.State) {
	if l.Log.Enabled(context.Background(), slog.LevelDebug) {
		l.Log.Debug("cell state changed", "row", cell.Row, "col", cell.Col, "state", state.String())
	}
	if l.Next != nil {
		l.Next.OnCellStateChanged(cell, state)
	}
}

// OnDepthStarted implements search.DepthObserver
func (l *Logger) OnDepthStarted(depth int) {
	l.Log.Debug("depth limit started", "depth", depth)
	forwardDepth(l.Next, depth)
}
