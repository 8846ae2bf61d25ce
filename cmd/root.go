package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/observe"
	"github.com/pfrederiksen/pathfinder/internal/output"
	"github.com/pfrederiksen/pathfinder/internal/scenario"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

var (
	// Global flags
	debug bool

	// Scenario overrides
	algorithm  string
	depthLimit int
	maxDepth   int
	size       int
	start      string
	target     string
	density    float64
	seed       int64

	format string
)

var rootCmd = &cobra.Command{
	Use:   "pathfinder [scenario-file]",
	Short: "Run uninformed search algorithms on an 8-connected grid",
	Long: `pathfinder runs breadth-first, depth-first, uniform-cost, depth-limited,
iterative-deepening and bidirectional search on a square grid where moves
go in eight directions. Orthogonal moves cost 1.0 and diagonal moves 1.4.

A scenario file (YAML or JSON) describes the grid, the endpoints and the
algorithm. Without one, an empty 15x15 grid is searched corner to corner.

Examples:
  # Search a scenario file with its own algorithm
  pathfinder maze.yaml

  # Override the algorithm and print the explored board
  pathfinder maze.yaml --algorithm iddfs

  # Random clustered walls, reproducible by seed
  pathfinder --size 20 --density 0.4 --seed 7 --algorithm ucs

  # Output as Graphviz DOT
  pathfinder maze.yaml --format dot

  # Show BFS rings around the start instead of searching
  pathfinder maze.yaml --format levels`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runSearch,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	for _, c := range []*cobra.Command{rootCmd, compareCmd} {
		c.Flags().IntVar(&depthLimit, "depth-limit", search.DefaultDepthLimit, "DLS depth limit")
		c.Flags().IntVar(&maxDepth, "max-depth", 0, "IDDFS depth ceiling (default: twice the grid size)")
		c.Flags().IntVar(&size, "size", grid.DefaultSize, "Grid size when no rows are given")
		c.Flags().StringVar(&start, "start", "", "Start cell as row,col (default: top-left)")
		c.Flags().StringVar(&target, "target", "", "Target cell as row,col (default: bottom-right)")
		c.Flags().Float64Var(&density, "density", 0, "Generate random walls with this density (0-1)")
		c.Flags().Int64Var(&seed, "seed", 1, "Random wall seed")
	}

	rootCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Algorithm: bfs, dfs, ucs, dls, iddfs, bidirectional (default: bfs)")
	rootCmd.Flags().StringVar(&format, "format", "grid", "Output format: grid, levels, dot, json")
}

func setupLogging() {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
}

// loadScenario reads the optional scenario file and applies flag overrides
func loadScenario(cmd *cobra.Command, args []string) (*scenario.Scenario, error) {
	sc := &scenario.Scenario{}
	if len(args) == 1 {
		loaded, err := scenario.Load(args[0])
		if err != nil {
			return nil, err
		}
		sc = loaded
		slog.Debug("Scenario loaded", "path", args[0])
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		sc.Algorithm = algorithm
	}
	if flags.Changed("depth-limit") {
		sc.DepthLimit = &depthLimit
	}
	if flags.Changed("max-depth") {
		sc.MaxDepth = maxDepth
	}
	if flags.Changed("size") || sc.Size == 0 {
		sc.Size = size
	}
	if flags.Changed("density") {
		sc.Random = &scenario.Random{Density: density, Seed: seed}
	} else if flags.Changed("seed") && sc.Random != nil {
		sc.Random.Seed = seed
	}
	if start != "" {
		c, err := parseCell(start)
		if err != nil {
			return nil, fmt.Errorf("invalid --start: %w", err)
		}
		sc.Start = &c
	}
	if target != "" {
		c, err := parseCell(target)
		if err != nil {
			return nil, fmt.Errorf("invalid --target: %w", err)
		}
		sc.Target = &c
	}
	return sc, nil
}

// parseCell reads "row,col"
func parseCell(s string) (grid.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Cell{}, fmt.Errorf("expected row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("bad column in %q: %w", s, err)
	}
	return grid.Cell{Row: row, Col: col}, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	setupLogging()

	sc, err := loadScenario(cmd, args)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	g, from, to, err := sc.Build()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "levels" {
		return output.RenderLevels(out, g, from)
	}

	alg, err := sc.AlgorithmOrDefault(search.BFS)
	if err != nil {
		return err
	}

	slog.Info("Starting search",
		"algorithm", alg,
		"size", g.Size(),
		"walls", g.WallCount(),
		"start", from,
		"target", to)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	board := observe.NewBoard(g.Size())
	rec := &observe.Recorder{}
	var obs search.Observer = observe.Tee{board, rec}
	if debug {
		obs = observe.NewLogger(obs, slog.Default())
	}

	search.Prime(board, from, to)
	started := time.Now()
	res, err := search.New(g, sc.Options()).Search(ctx, alg, from, to, obs)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	elapsed := time.Since(started)
	search.Trace(board, res.Path)

	slog.Info("Search complete",
		"outcome", res.Outcome,
		"cells", len(res.Path),
		"expanded", res.Expanded,
		"duration", elapsed)

	switch format {
	case "grid":
		return output.RenderGrid(out, g, board, from, to, res)
	case "dot":
		return output.RenderDOT(out, res)
	case "json":
		return output.RenderJSON(out, output.ResultJSON{
			Result:          res,
			Events:          rec.Events(),
			ExecutionTimeMs: float64(elapsed.Microseconds()) / 1000,
		})
	default:
		return fmt.Errorf("unknown format: %s (must be grid, levels, dot, or json)", format)
	}
}
