// Package connector attaches an off-graph point to the network. It finds
// the nearest edge via package spatial, projects the point onto it, builds
// up to k shortest Manhattan (axis-ordered) approach routes from the point
// to that projection, and emits a fresh extended graph carrying the new
// external node and its approach edges. The base graph is never mutated.
package connector

import "errors"

// Sentinel errors.
var (
	// ErrNoEdgeFound indicates the graph has no edges to connect to.
	ErrNoEdgeFound = errors.New("connector: no edge found")

	// ErrProjectionDegenerate indicates the nearest edge had zero length.
	ErrProjectionDegenerate = errors.New("connector: projection onto a degenerate edge")
)
