package output

import (
	"encoding/json"
	"io"

	"github.com/pfrederiksen/pathfinder/internal/observe"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

// ResultJSON is a search result with its recorded step events
type ResultJSON struct {
	Result          search.Result   `json:"result"`
	Events          []observe.Event `json:"events,omitempty"`
	ExecutionTimeMs float64         `json:"executionTimeMs"`
}

// RenderJSON renders a result as indented JSON
func RenderJSON(w io.Writer, out ResultJSON) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
