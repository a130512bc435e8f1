// File: resolve.go
// Role: Resolve — map an arbitrary query point onto a graph node, splitting
// an edge via Overlay.Split when the point lies on one within tolerance.
package resolver

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/cablefilter"
	"github.com/cadimo/pathcore/core"
	"github.com/cadimo/pathcore/spatial"
)

// endpointSnapEpsilon is how close t must be to 0 or 1 before a projection
// is treated as landing exactly on an existing endpoint rather than
// warranting a fresh split.
const endpointSnapEpsilon = 1e-9

// Resolve maps point onto a node key usable by astar.Search over a View
// built from g, adj, and overlay.
//
// It tries, in order:
//  1. An exact match: point.Key already names a base-graph or overlay node.
//  2. The nearest edge among the effective edge set (base edges minus any
//     the overlay has hidden behind a split, plus the overlay's own
//     sub-edges). If the projection lands within tol of an endpoint, that
//     endpoint's key is returned directly. Otherwise, if the projection
//     itself is within tol of point, a new virtual node is inserted via
//     overlay.Split and its key returned.
//
// Fails with a *PointNotOnGraphError if no edge is within tol.
func Resolve(g *core.Graph, adj cablefilter.Adjacency, overlay *Overlay, point core.Point, tol float64, opts ...spatial.Option) (string, error) {
	if g.HasNode(point.Key) {
		return point.Key, nil
	}
	if overlay != nil && overlay.HasNode(point.Key) {
		return point.Key, nil
	}

	edges, coords := EffectiveEdgeSet(g, adj, overlay)
	idx, err := spatial.Build(edges, coords, opts...)
	if err != nil {
		return "", fmt.Errorf("resolver: building index: %w", err)
	}

	edge, proj, t, dist, err := idx.NearestEdge(point.Vec)
	if err != nil {
		return "", &PointNotOnGraphError{Point: point.Vec, NearestDistance: dist, Quality: spatial.BucketFor(dist)}
	}
	if dist > tol {
		return "", &PointNotOnGraphError{Point: point.Vec, NearestDistance: dist, Quality: spatial.BucketFor(dist)}
	}

	dFrom := r3.Norm(r3.Sub(proj, coords[edge.From]))
	dTo := r3.Norm(r3.Sub(proj, coords[edge.To]))
	if t <= endpointSnapEpsilon || (dFrom <= tol && dFrom <= dTo) {
		return edge.From, nil
	}
	if t >= 1-endpointSnapEpsilon || dTo <= tol {
		return edge.To, nil
	}

	key := core.CanonicalKey(proj)
	if overlay == nil {
		overlay = NewOverlay()
	}
	if overlay.HasNode(key) {
		return key, nil
	}
	overlay.Split(edge, core.Node{Key: key, Coord: proj, Sys: edge.Sys})

	return key, nil
}

// EffectiveEdgeSet merges the cable-filtered base edges (minus any hidden
// by a prior split) with the overlay's own sub-edges, along with every
// coordinate either set of edges references. Exported so a caller outside
// this package (the orchestrator's external-connector fallback) can build
// the same edge/coordinate universe connector.Connect needs.
func EffectiveEdgeSet(g *core.Graph, adj cablefilter.Adjacency, overlay *Overlay) ([]core.Edge, map[string]r3.Vec) {
	seen := make(map[uint64]struct{})
	var edges []core.Edge
	coords := make(map[string]r3.Vec)

	addCoord := func(key string) {
		if _, ok := coords[key]; ok {
			return
		}
		if overlay != nil {
			if n, ok := overlay.Node(key); ok {
				coords[key] = n.Coord
				return
			}
		}
		if n, ok := g.Node(key); ok {
			coords[key] = n.Coord
		}
	}

	for _, tramoIDs := range adj {
		for _, id := range tramoIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			if overlay != nil && overlay.IsHidden(id) {
				continue
			}
			e, ok := g.Edge(id)
			if !ok {
				continue
			}
			seen[id] = struct{}{}
			edges = append(edges, e)
			addCoord(e.From)
			addCoord(e.To)
		}
	}

	if overlay != nil {
		for _, e := range overlay.AllSubEdges() {
			edges = append(edges, e)
			addCoord(e.From)
			addCoord(e.To)
		}
	}

	return edges, coords
}
