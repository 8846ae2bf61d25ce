package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/observe"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

// glyphs used by RenderGrid
const (
	glyphEmpty    = '.'
	glyphWall     = '#'
	glyphStart    = 'S'
	glyphTarget   = 'T'
	glyphFrontier = '+'
	glyphExplored = 'o'
	glyphPath     = '*'
)

// RenderGrid draws the board as ascii, with the result's path on top.
// A nil board draws walls and the path only.
func RenderGrid(w io.Writer, g *grid.Grid, b *observe.Board, start, target grid.Cell, res search.Result) error {
	if g == nil {
		return fmt.Errorf("no grid to render")
	}

	onPath := make(map[grid.Cell]bool, len(res.Path))
	for _, c := range res.Path {
		onPath[c] = true
	}

	n := g.Size()
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := grid.Cell{Row: r, Col: c}
			sb.WriteRune(glyph(g, b, cell, start, target, onPath[cell]))
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nLegend: %c start  %c target  %c wall  %c frontier  %c explored  %c path\n",
		glyphStart, glyphTarget, glyphWall, glyphFrontier, glyphExplored, glyphPath)
	fmt.Fprintf(w, "Summary: %s\n", Summary(res))
	return nil
}

func glyph(g *grid.Grid, b *observe.Board, c, start, target grid.Cell, onPath bool) rune {
	switch {
	case c == start:
		return glyphStart
	case c == target:
		return glyphTarget
	case g.Blocked(c):
		return glyphWall
	case onPath:
		return glyphPath
	}
	if b == nil {
		return glyphEmpty
	}
	switch b.State(c) {
	case search.Frontier:
		return glyphFrontier
	case search.Explored:
		return glyphExplored
	case search.Path:
		return glyphPath
	}
	return glyphEmpty
}

// Summary describes a result on one line
func Summary(res search.Result) string {
	switch res.Outcome {
	case search.Found:
		return fmt.Sprintf("%s found a path of %d cells, cost %.1f, %d expanded",
			res.Algorithm, len(res.Path), res.Cost, res.Expanded)
	case search.Cutoff:
		return fmt.Sprintf("%s hit its depth limit (%d) after %d expanded",
			res.Algorithm, res.Depth, res.Expanded)
	default:
		return fmt.Sprintf("%s found no path, %d expanded", res.Algorithm, res.Expanded)
	}
}
