package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/observe"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

func TestRenderGrid(t *testing.T) {
	g, start, target, err := grid.FromRows([]string{
		"S..",
		"##.",
		"..T",
	})
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}

	board := observe.NewBoard(g.Size())
	res, err := search.New(g, nil).Search(context.Background(), search.BFS, *start, *target, board)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	var buf bytes.Buffer
	if err := RenderGrid(&buf, g, board, *start, *target, res); err != nil {
		t.Fatalf("RenderGrid() error = %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	want := []string{"S*o", "##*", ".+T"}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("row %d = %q, want %q\nGot:\n%s", i, lines[i], w, buf.String())
		}
	}

	output := buf.String()
	for _, expected := range []string{"Legend:", "Summary: BFS found a path of 4 cells, cost 3.4"} {
		if !strings.Contains(output, expected) {
			t.Errorf("RenderGrid() output missing %q\nGot:\n%s", expected, output)
		}
	}
}

func TestRenderGridNilBoard(t *testing.T) {
	g := grid.New(2)
	res := search.Result{Algorithm: search.DLS, Outcome: search.Cutoff, Depth: 1}

	var buf bytes.Buffer
	if err := RenderGrid(&buf, g, nil, grid.Cell{}, grid.Cell{Row: 1, Col: 1}, res); err != nil {
		t.Fatalf("RenderGrid() error = %v", err)
	}

	output := buf.String()
	if !strings.HasPrefix(output, "S.\n.T\n") {
		t.Errorf("unexpected grid:\n%s", output)
	}
	if !strings.Contains(output, "DLS hit its depth limit (1)") {
		t.Errorf("missing cutoff summary:\n%s", output)
	}
}

func TestRenderGridNoGrid(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderGrid(&buf, nil, nil, grid.Cell{}, grid.Cell{}, search.Result{}); err == nil {
		t.Error("expected error for nil grid")
	}
}
