// Package spatial implements the uniform-cell 3D grid used to resolve
// arbitrary query points to graph nodes or to points on edges.
//
// An Index is built once over a filtered set of edges (cablefilter has
// already pruned them to a cable's permitted systems). It answers two
// queries: NearestNode, a tolerance-bounded nearest-neighbor search with
// shell expansion and a provably-closest early-termination test, and
// NearestEdge, a distance-to-segment search used by package resolver for
// edge splitting and by package connector to find an attachment edge.
//
// Cell size defaults to min(avg_cubic, 2*avg_edge_length) — see
// DefaultCellSize — balancing per-cell occupancy against shell-search
// radius, per the reference heuristic.
package spatial

import "errors"

// Sentinel errors for spatial queries.
var (
	// ErrEmptyIndex indicates a query was issued against an Index with no edges.
	ErrEmptyIndex = errors.New("spatial: index has no edges")

	// ErrNoNearestNode indicates no node lay within the query's tolerance.
	ErrNoNearestNode = errors.New("spatial: no node within tolerance")

	// ErrDegenerateSegment indicates an edge's endpoints coincide (zero length).
	ErrDegenerateSegment = errors.New("spatial: degenerate (zero-length) segment")
)
