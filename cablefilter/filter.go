// File: filter.go
// Role: FilteredAdjacency and ValidateEndpoint — the two C2 operations
// consumed by every downstream component that walks or resolves onto the
// graph.
package cablefilter

import (
	"fmt"
	"sort"

	"github.com/cadimo/pathcore/core"
)

// FilteredAdjacency returns the bidirectional adjacency of g restricted to
// edges whose system tag is permitted for cable. It never materializes a
// pruned copy of g itself — only a node-key -> tramo-ID map — so the base
// Graph stays untouched and shareable.
//
// Complexity: O(E).
func FilteredAdjacency(g *core.Graph, table CableTable, cable CableType) (Adjacency, error) {
	allowed, err := table.AllowedSystems(cable)
	if err != nil {
		return nil, err
	}

	adj := make(Adjacency, g.NodeCount())
	for _, e := range g.Edges() {
		if e.Sys != core.SystemExternal && !allowed.Contains(e.Sys) {
			continue
		}
		adj[e.From] = append(adj[e.From], e.TramoID)
		if e.To != e.From {
			adj[e.To] = append(adj[e.To], e.TramoID)
		}
	}
	for key := range adj {
		sort.Slice(adj[key], func(i, j int) bool { return adj[key][i] < adj[key][j] })
	}

	return adj, nil
}

// ValidateEndpoint fails with ErrUnknownNode if nodeKey is absent from g,
// or ErrEndpointInForbiddenSystem if its system tag is not permitted for
// cable. SystemExternal nodes (package connector) are always accepted:
// they are terminal-only and outside ordinary cable-system gating.
func ValidateEndpoint(g *core.Graph, nodeKey string, table CableTable, cable CableType) error {
	n, ok := g.Node(nodeKey)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, nodeKey)
	}
	if n.Sys == core.SystemExternal {
		return nil
	}

	allowed, err := table.AllowedSystems(cable)
	if err != nil {
		return err
	}
	if !allowed.Contains(n.Sys) {
		return fmt.Errorf("%w: node %s has system %s, cable %s permits %v",
			ErrEndpointInForbiddenSystem, nodeKey, n.Sys, cable, allowed.Sorted())
	}

	return nil
}
