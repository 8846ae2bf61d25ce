package output

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/pathfinder/internal/grid"
)

// RenderLevels lists the cells reachable from start, one BFS ring per level
func RenderLevels(w io.Writer, g *grid.Grid, start grid.Cell) error {
	levels := g.Levels(start)
	if len(levels) == 0 {
		return fmt.Errorf("start cell is not free: %v", start)
	}

	total := 0
	for _, level := range levels {
		fmt.Fprintf(w, "\n[Level %d] ", level.Depth)
		switch level.Depth {
		case 0:
			fmt.Fprintf(w, "Start\n")
		case 1:
			fmt.Fprintf(w, "One move away\n")
		default:
			fmt.Fprintf(w, "%d moves away\n", level.Depth)
		}

		for i, c := range level.Cells {
			prefix := "└─"
			if i < len(level.Cells)-1 {
				prefix = "├─"
			}
			fmt.Fprintf(w, "%s %v\n", prefix, c)
		}
		total += len(level.Cells)
	}

	fmt.Fprintf(w, "\nSummary: %d reachable cells, %d levels\n", total, len(levels))
	return nil
}
