// Package pathcore is a constrained pathfinding engine for cable-routing
// networks laid out in 3D space.
//
// A network is a tagged graph: every node and edge carries a system tag
// (package core), and a cable's allowed/forbidden system sets restrict
// which edges it may ever traverse (package cablefilter). Arbitrary query
// points — not necessarily existing graph nodes — resolve onto the graph
// through a spatial index (package spatial) that finds the nearest edge
// and, if the point lies strictly inside it, splits that edge on demand
// (package resolver) without ever mutating the base graph. A* search
// (package astar) runs over this per-search view, and the composer
// package (composer) chains searches across an ordered sequence of
// mandatory waypoints, optionally enforcing an anti-backtracking rule
// between consecutive legs.
//
// A point too far from any edge to resolve within tolerance can still be
// attached to the network: the external connector (package connector)
// projects it onto the nearest edge and joins it with an orthogonal
// Manhattan approach, producing a derived node the orchestrator treats as
// an ordinary endpoint or waypoint from then on.
//
// Package orchestrator is the public facade: Direct, PPO, MultiPPO,
// ForwardPath, and OptimalCheck tie the above together behind a single
// request type, attaching a request ID and structured log output at the
// boundary. Package ioformat decodes the JSON graph, tramo-map, and
// forbidden-set documents an operator hands in and encodes the resulting
// result.PathResult back out; cmd/pathcore wraps all five operations in a
// cobra-based CLI.
package pathcore
