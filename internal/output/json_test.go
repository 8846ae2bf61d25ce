package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/observe"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

func TestRenderJSON(t *testing.T) {
	out := ResultJSON{
		Result: search.Result{
			Algorithm: search.UCS,
			Outcome:   search.Found,
			Path:      []grid.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}},
			Cost:      1.4,
			Expanded:  2,
		},
		Events: []observe.Event{
			{Cell: grid.Cell{Row: 1, Col: 1}, State: search.Frontier},
		},
		ExecutionTimeMs: 0.5,
	}

	var buf bytes.Buffer
	if err := RenderJSON(&buf, out); err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}

	result, ok := decoded["result"].(map[string]any)
	if !ok {
		t.Fatalf("expected result object, got %T", decoded["result"])
	}
	if result["algorithm"] != "UCS" || result["outcome"] != "found" {
		t.Errorf("unexpected result: %v", result)
	}
	if path, ok := result["path"].([]any); !ok || len(path) != 2 {
		t.Errorf("expected 2 path cells, got %v", result["path"])
	}

	events, ok := decoded["events"].([]any)
	if !ok || len(events) != 1 {
		t.Fatalf("expected 1 event, got %v", decoded["events"])
	}
	if ev := events[0].(map[string]any); ev["state"] != "frontier" {
		t.Errorf("event state = %v, want frontier", ev["state"])
	}
	if decoded["executionTimeMs"] != 0.5 {
		t.Errorf("executionTimeMs = %v", decoded["executionTimeMs"])
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderJSON(&buf, ResultJSON{}); err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var decoded ResultJSON
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}
	if decoded.Result.Outcome != search.NotFound || len(decoded.Events) != 0 {
		t.Errorf("unexpected decode: %+v", decoded)
	}
}
