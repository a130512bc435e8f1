// Package composer chains A* legs across an ordered sequence of waypoints:
// origin, zero or more mandatory waypoints, destination. It walks whatever
// astar.Graph the caller hands it (the orchestrator passes a resolver.View
// over the request's shared overlay), and implements the optional
// forward-path rule as an explicit per-leg forbidden-edge delta rather
// than any mutation shared across legs.
package composer
