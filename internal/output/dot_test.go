package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

func TestRenderDOT(t *testing.T) {
	path := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 2}}
	res := search.Result{
		Algorithm: search.BFS,
		Outcome:   search.Found,
		Path:      path,
		Cost:      grid.PathCost(path),
		Expanded:  4,
	}

	var buf bytes.Buffer
	if err := RenderDOT(&buf, res); err != nil {
		t.Fatalf("RenderDOT() error = %v", err)
	}

	output := buf.String()

	expectedStrings := []string{
		"digraph path {",
		"rankdir=LR;",
		`"r0c0" [label="(0,0)\nstart"];`,
		`"r0c1" [label="(0,1)"];`,
		`"r1c2" [label="(1,2)\ntarget"];`,
		`"r0c0" -> "r0c1" [label="1.0"];`,
		`"r0c1" -> "r1c2" [label="1.4", style=dashed];`,
		"}",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("RenderDOT() output missing expected string: %s\nGot:\n%s", expected, output)
		}
	}
}

func TestRenderDOTNotFound(t *testing.T) {
	res := search.Result{Algorithm: search.DFS, Outcome: search.NotFound, Expanded: 7}

	var buf bytes.Buffer
	if err := RenderDOT(&buf, res); err != nil {
		t.Fatalf("RenderDOT() error = %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "->") {
		t.Errorf("expected no edges without a path:\n%s", output)
	}
	if !strings.Contains(output, "DFS found no path") {
		t.Errorf("expected summary label:\n%s", output)
	}
}

func TestCellID(t *testing.T) {
	tests := []struct {
		cell     grid.Cell
		expected string
	}{
		{grid.Cell{Row: 0, Col: 0}, `"r0c0"`},
		{grid.Cell{Row: 12, Col: 3}, `"r12c3"`},
	}

	for _, tt := range tests {
		if got := cellID(tt.cell); got != tt.expected {
			t.Errorf("cellID(%v) = %s, want %s", tt.cell, got, tt.expected)
		}
	}
}
