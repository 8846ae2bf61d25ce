// Package search implements six uninformed search strategies over an
// 8-connected weighted grid: breadth-first, depth-first, uniform-cost,
// depth-limited, iterative-deepening depth-first and bidirectional search.
//
// A Searcher is bound to one grid and runs synchronously. Progress is pushed
// to an Observer as cells enter the frontier or explored states; the engine
// never reads anything back from it. The only suspension points are those
// observer calls, and the context passed to Search is polled between
// expansion steps.
package search
