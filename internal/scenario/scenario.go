// Package scenario describes a search run as data: the grid, its endpoints
// and the algorithm settings. Scenarios load from YAML or JSON.
package scenario

import (
	"errors"
	"fmt"
	"time"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

// ErrScenario wraps every scenario validation failure
var ErrScenario = errors.New("invalid scenario")

// Random configures generated walls
type Random struct {
	Density  float64 `json:"density" yaml:"density"`
	Seed     int64   `json:"seed" yaml:"seed"`
	Clusters int     `json:"clusters,omitempty" yaml:"clusters,omitempty"`
	Steps    int     `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Scenario is a complete, serialisable search request.
// Rows, when set, define the grid (and optionally the endpoints) and take
// precedence over Size, Walls and Random.
type Scenario struct {
	Size       int         `json:"size,omitempty" yaml:"size,omitempty"`
	Rows       []string    `json:"rows,omitempty" yaml:"rows,omitempty"`
	Walls      []grid.Cell `json:"walls,omitempty" yaml:"walls,omitempty"`
	Random     *Random     `json:"random,omitempty" yaml:"random,omitempty"`
	Start      *grid.Cell  `json:"start,omitempty" yaml:"start,omitempty"`
	Target     *grid.Cell  `json:"target,omitempty" yaml:"target,omitempty"`
	Algorithm  string      `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	DepthLimit *int        `json:"depthLimit,omitempty" yaml:"depthLimit,omitempty"`
	MaxDepth   int         `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty"`
	DelayMs    int         `json:"delayMs,omitempty" yaml:"delayMs,omitempty"`
}

// Build materialises the grid and endpoints. Missing endpoints default to
// the top-left and bottom-right corners.
func (s *Scenario) Build() (*grid.Grid, grid.Cell, grid.Cell, error) {
	var (
		g             *grid.Grid
		start, target *grid.Cell
	)

	if len(s.Rows) > 0 {
		var err error
		g, start, target, err = grid.FromRows(s.Rows)
		if err != nil {
			return nil, grid.Cell{}, grid.Cell{}, fmt.Errorf("%w: %w", ErrScenario, err)
		}
	} else {
		if s.Size < 0 {
			return nil, grid.Cell{}, grid.Cell{}, fmt.Errorf("%w: negative size %d", ErrScenario, s.Size)
		}
		g = grid.New(s.Size)
	}

	if s.Start != nil {
		start = s.Start
	}
	if s.Target != nil {
		target = s.Target
	}
	n := g.Size()
	if start == nil {
		start = &grid.Cell{Row: 0, Col: 0}
	}
	if target == nil {
		target = &grid.Cell{Row: n - 1, Col: n - 1}
	}

	if len(s.Rows) == 0 {
		if s.Random != nil {
			g = grid.Random(n, grid.RandomOptions{
				Clusters: s.Random.Clusters,
				Steps:    s.Random.Steps,
				Density:  s.Random.Density,
				Seed:     s.Random.Seed,
			}, *start, *target)
		}
		for _, w := range s.Walls {
			if !g.InBounds(w) {
				return nil, grid.Cell{}, grid.Cell{}, fmt.Errorf("%w: wall %v is outside the %dx%d grid", ErrScenario, w, n, n)
			}
			g.SetBlocked(w, true)
		}
	}

	return g, *start, *target, nil
}

// AlgorithmOrDefault parses Algorithm, falling back to def when unset
func (s *Scenario) AlgorithmOrDefault(def search.Algorithm) (search.Algorithm, error) {
	if s.Algorithm == "" {
		return def, nil
	}
	return search.ParseAlgorithm(s.Algorithm)
}

// Options returns the search options described by the scenario
func (s *Scenario) Options() *search.Options {
	opts := search.DefaultOptions()
	if s.DepthLimit != nil {
		opts.DepthLimit = *s.DepthLimit
	}
	opts.MaxDepth = s.MaxDepth
	return &opts
}

// Delay is the per-step display delay
func (s *Scenario) Delay() time.Duration {
	if s.DelayMs <= 0 {
		return 0
	}
	return time.Duration(s.DelayMs) * time.Millisecond
}
