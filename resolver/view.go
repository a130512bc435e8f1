// File: view.go
// Role: View adapts a base graph, a cable-filtered adjacency, and an
// Overlay into a single astar.Graph, merging overlay edges ahead of base
// edges so a split always takes priority over the tramo it replaced.
package resolver

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/astar"
	"github.com/cadimo/pathcore/cablefilter"
	"github.com/cadimo/pathcore/core"
)

// View implements astar.Graph over a base core.Graph restricted by a
// cablefilter.Adjacency, with an Overlay layered on top. It is built fresh
// for each search; nothing it does is visible to a later, unrelated search
// sharing the same base Graph.
type View struct {
	g       *core.Graph
	adj     cablefilter.Adjacency
	overlay *Overlay
}

// NewView returns a View over g restricted to adj, with overlay consulted
// first for both adjacency and coordinates. overlay may be nil, in which
// case View behaves as a plain filtered view of g.
func NewView(g *core.Graph, adj cablefilter.Adjacency, overlay *Overlay) *View {
	return &View{g: g, adj: adj, overlay: overlay}
}

// Coord returns the coordinate of key, checking the overlay's virtual
// nodes before the base graph.
func (v *View) Coord(key string) (r3.Vec, bool) {
	if v.overlay != nil {
		if n, ok := v.overlay.Node(key); ok {
			return n.Coord, true
		}
	}
	if n, ok := v.g.Node(key); ok {
		return n.Coord, true
	}
	return r3.Vec{}, false
}

// Neighbors returns every edge incident to key, overlay sub-edges first,
// then base edges whose tramo ID the overlay has not hidden behind a
// split.
func (v *View) Neighbors(key string) []astar.Neighbor {
	var out []astar.Neighbor

	if v.overlay != nil {
		for _, e := range v.overlay.SubEdgesAt(key) {
			other := e.Other(key)
			out = append(out, astar.Neighbor{NodeKey: other, TramoID: e.TramoID, Weight: v.weight(key, other)})
		}
	}

	for _, tramoID := range v.adj[key] {
		if v.overlay != nil && v.overlay.IsHidden(tramoID) {
			continue
		}
		e, ok := v.g.Edge(tramoID)
		if !ok {
			continue
		}
		other := e.Other(key)
		out = append(out, astar.Neighbor{NodeKey: other, TramoID: tramoID, Weight: v.weight(key, other)})
	}

	return out
}

func (v *View) weight(a, b string) float64 {
	av, _ := v.Coord(a)
	bv, _ := v.Coord(b)
	return r3.Norm(r3.Sub(bv, av))
}
