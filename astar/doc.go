// Package astar implements A* shortest-path search over any graph that
// satisfies the astar.Graph interface: Euclidean edge cost, Euclidean
// heuristic to the goal (admissible and consistent on straight-line 3D
// coordinates), a binary-heap open set, and a hash-set closed set.
//
// The engine never materializes a pruned graph. It is handed a Graph
// (typically resolver.View, which merges a per-search overlay over a
// cable-filtered base graph) and a forbidden set, and consults both only
// at neighbor-expansion time — so a per-leg forbidden-set change costs
// O(1).
package astar

import "errors"

// Sentinel errors returned by Search.
var (
	// ErrNoPath indicates the open set emptied before reaching goal.
	ErrNoPath = errors.New("astar: no path found")

	// ErrUnknownEndpoint indicates start or goal has no known coordinate.
	ErrUnknownEndpoint = errors.New("astar: unknown endpoint")

	// ErrCancelled indicates the search's context was cancelled mid-search.
	ErrCancelled = errors.New("astar: cancelled")
)
