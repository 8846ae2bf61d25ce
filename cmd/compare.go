package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

var compareCmd = &cobra.Command{
	Use:   "compare [scenario-file]",
	Short: "Run every algorithm on the same grid and compare them",
	Long: `compare runs all six algorithms on one scenario and prints a table of
outcome, path length, path cost and cells expanded, together with the fewest
moves any path can take.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runCompare,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

// comparison is one row of the compare table
type comparison struct {
	result  search.Result
	elapsed time.Duration
}

func runCompare(cmd *cobra.Command, args []string) error {
	setupLogging()

	sc, err := loadScenario(cmd, args)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	g, from, to, err := sc.Build()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rows, err := compareAll(ctx, search.New(g, sc.Options()), from, to)
	if err != nil {
		return err
	}

	return renderComparison(cmd.OutOrStdout(), g, from, to, rows)
}

func compareAll(ctx context.Context, s *search.Searcher, from, to grid.Cell) ([]comparison, error) {
	rows := make([]comparison, 0, len(search.Algorithms()))
	for _, alg := range search.Algorithms() {
		started := time.Now()
		res, err := s.Search(ctx, alg, from, to, nil)
		if err != nil {
			return nil, fmt.Errorf("%s failed: %w", alg, err)
		}
		elapsed := time.Since(started)

		slog.Debug("Algorithm finished", "algorithm", alg, "outcome", res.Outcome, "duration", elapsed)
		rows = append(rows, comparison{result: res, elapsed: elapsed})
	}
	return rows, nil
}

func renderComparison(w io.Writer, g *grid.Grid, from, to grid.Cell, rows []comparison) error {
	fmt.Fprintf(w, "Grid %dx%d, %d walls, %v -> %v\n", g.Size(), g.Size(), g.WallCount(), from, to)
	if d := g.Distance(from, to); d >= 0 {
		fmt.Fprintf(w, "Fewest moves: %d\n\n", d)
	} else {
		fmt.Fprintf(w, "Target is unreachable\n\n")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tOUTCOME\tCELLS\tCOST\tEXPANDED\tDEPTH\tTIME")
	for _, row := range rows {
		res := row.result
		cells, cost, depth := "-", "-", "-"
		if res.Found() {
			cells = fmt.Sprint(len(res.Path))
			cost = fmt.Sprintf("%.1f", res.Cost)
		}
		if res.Algorithm == search.DLS || res.Algorithm == search.IDDFS {
			depth = fmt.Sprint(res.Depth)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			res.Algorithm, res.Outcome, cells, cost, res.Expanded, depth, row.elapsed.Round(time.Microsecond))
	}
	return tw.Flush()
}
