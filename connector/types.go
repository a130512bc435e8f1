package connector

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/core"
	"github.com/cadimo/pathcore/spatial"
)

// DefaultK is the number of shortest Manhattan approach routes retained
// when the caller does not override it.
const DefaultK = 2

// Route is one Manhattan approach from the external point to the
// connection point: a sequence of intermediate waypoints (excluding the
// external point itself, including the connection point as the last
// entry), built by applying the three axis deltas in AxisOrder.
type Route struct {
	AxisOrder string // e.g. "XYZ" — the order the three deltas were applied in
	Waypoints []r3.Vec
	Distance  float64 // Manhattan distance, identical across every route
}

// Result is the outcome of Connect: the nearest edge found, the connection
// point projected onto it, up to k Manhattan approach routes, and the
// fresh nodes/edges needed to splice the external point into the graph.
type Result struct {
	ExternalNode   core.Node
	ConnectionNode core.Node
	NearestEdge    core.Edge
	Quality        spatial.MatchQuality
	Routes         []Route

	// ExtraNodes and ExtraEdges are the derived artifact described in the
	// external-connector contract: new nodes/edges to splice in without
	// mutating the base graph. HiddenTramoID is non-zero only when the
	// connection point falls strictly inside NearestEdge, in which case
	// ExtraEdges contains the two replacement sub-edges (both carrying
	// HiddenTramoID) and the original edge must no longer be walked
	// directly.
	ExtraNodes    []core.Node
	ExtraEdges    []core.Edge
	HiddenTramoID uint64 // 0 means "no edge was split"
}
