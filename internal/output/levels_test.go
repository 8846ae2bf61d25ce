package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pfrederiksen/pathfinder/internal/grid"
)

func TestRenderLevels(t *testing.T) {
	g := grid.New(3)

	var buf bytes.Buffer
	if err := RenderLevels(&buf, g, grid.Cell{Row: 1, Col: 1}); err != nil {
		t.Fatalf("RenderLevels() error = %v", err)
	}

	output := buf.String()
	expectedStrings := []string{
		"[Level 0] Start",
		"└─ (1,1)",
		"[Level 1] One move away",
		"├─ (0,1)",
		"Summary: 9 reachable cells, 2 levels",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("RenderLevels() output missing %q\nGot:\n%s", expected, output)
		}
	}
}

func TestRenderLevelsBlockedStart(t *testing.T) {
	g := grid.New(3)
	g.SetBlocked(grid.Cell{}, true)

	var buf bytes.Buffer
	if err := RenderLevels(&buf, g, grid.Cell{}); err == nil {
		t.Error("expected error for blocked start")
	}
}
