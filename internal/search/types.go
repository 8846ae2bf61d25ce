package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pfrederiksen/pathfinder/internal/grid"
)

var (
	// ErrInvalidInput is returned before any search begins when the grid,
	// start, target or options cannot be searched.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownAlgorithm is returned for names outside the supported set.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Algorithm selects a search strategy
type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	UCS
	DLS
	IDDFS
	Bidirectional
)

var algorithmNames = [...]string{
	BFS:           "BFS",
	DFS:           "DFS",
	UCS:           "UCS",
	DLS:           "DLS",
	IDDFS:         "IDDFS",
	Bidirectional: "Bidirectional",
}

// Algorithms returns every supported algorithm in display order
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, UCS, DLS, IDDFS, Bidirectional}
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm resolves a case-insensitive algorithm name
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return BFS, nil
	case "dfs", "depth-first":
		return DFS, nil
	case "ucs", "uniform-cost":
		return UCS, nil
	case "dls", "depth-limited":
		return DLS, nil
	case "iddfs", "iterative-deepening":
		return IDDFS, nil
	case "bidirectional", "bidi", "bds":
		return Bidirectional, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// MarshalText implements encoding.TextMarshaler
func (a Algorithm) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(algorithmNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Outcome is the terminal state of a search run
type Outcome int

const (
	// NotFound means the search space was exhausted without reaching the target.
	NotFound Outcome = iota
	// Found means Result.Path holds a start-to-target path.
	Found
	// Cutoff means a depth-limited search ran out of depth before it ran out of cells.
	Cutoff
)

var outcomeNames = [...]string{
	NotFound: "not-found",
	Found:    "found",
	Cutoff:   "cutoff",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// MarshalText implements encoding.TextMarshaler
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (o *Outcome) UnmarshalText(text []byte) error {
	for i, name := range outcomeNames {
		if name == string(text) {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

// Result is the outcome of one search run.
// Path is only set when Outcome is Found; a start == target run yields a
// one-cell path.
type Result struct {
	Algorithm Algorithm   `json:"algorithm"`
	Outcome   Outcome     `json:"outcome"`
	Path      []grid.Cell `json:"path,omitempty"`
	Cost      float64     `json:"cost"`
	Expanded  int         `json:"expanded"`        // cells moved into the explored state
	Depth     int         `json:"depth,omitempty"` // DLS limit, or the last IDDFS limit tried
}

// Found reports whether the run reached the target
func (r Result) Found() bool {
	return r.Outcome == Found
}

// Options configures the depth-bounded strategies
type Options struct {
	// DepthLimit is the remaining-depth budget given to DLS.
	DepthLimit int
	// MaxDepth bounds the IDDFS sweep; limits 0..MaxDepth-1 are tried.
	// Zero selects twice the grid size.
	MaxDepth int
}

// DefaultDepthLimit is the DLS budget used when no options are given
const DefaultDepthLimit = 15

// DefaultOptions returns the options used when New is given nil
func DefaultOptions() Options {
	return Options{DepthLimit: DefaultDepthLimit}
}
