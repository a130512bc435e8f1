// Package resolver resolves an arbitrary 3D query point to a graph node,
// splitting an edge on demand when the point lies on it within tolerance.
//
// A single Overlay accumulates every virtual node/edge created while
// resolving the waypoints of one multi-leg composition: origin, each PPO,
// and the destination all resolve against the same Overlay, so a later
// waypoint sees the splits an earlier one made. The Overlay is owned by
// the caller (package orchestrator) and discarded when the request returns —
// nothing here mutates the base core.Graph.
package resolver

import "errors"

// ErrPointNotOnGraph is the sentinel wrapped by PointNotOnGraphError, so
// callers can use errors.Is without unwrapping the richer type.
var ErrPointNotOnGraph = errors.New("resolver: point not on graph")
