package output

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

// RenderDOT renders the found path in Graphviz DOT format, one node per
// cell and one edge per move labelled with its cost.
func RenderDOT(w io.Writer, res search.Result) error {
	fmt.Fprintln(w, "digraph path {")
	fmt.Fprintln(w, "  rankdir=LR;")
	fmt.Fprintln(w, "  node [shape=box, style=rounded];")
	fmt.Fprintf(w, "  label=\"%s\";\n", Summary(res))
	fmt.Fprintln(w, "")

	for i, c := range res.Path {
		label := c.String()
		switch {
		case i == 0:
			label += "\\nstart"
		case i == len(res.Path)-1:
			label += "\\ntarget"
		}
		fmt.Fprintf(w, "  %s [label=\"%s\"];\n", cellID(c), label)
	}

	if len(res.Path) > 1 {
		fmt.Fprintln(w, "")
	}

	for i := 1; i < len(res.Path); i++ {
		from, to := res.Path[i-1], res.Path[i]
		cost := grid.MoveCost(from, to)
		if cost == grid.DiagonalCost {
			fmt.Fprintf(w, "  %s -> %s [label=\"%.1f\", style=dashed];\n", cellID(from), cellID(to), cost)
		} else {
			fmt.Fprintf(w, "  %s -> %s [label=\"%.1f\"];\n", cellID(from), cellID(to), cost)
		}
	}

	fmt.Fprintln(w, "}")
	return nil
}

func cellID(c grid.Cell) string {
	return fmt.Sprintf("\"r%dc%d\"", c.Row, c.Col)
}
