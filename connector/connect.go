// File: connect.go
// Role: Connect — the C7 algorithm: nearest-edge search, projection,
// Manhattan approach-route generation, and extended-graph assembly.
package connector

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/core"
	"github.com/cadimo/pathcore/spatial"
)

// endpointSnapEpsilon mirrors package resolver's endpoint-snap tolerance:
// a projection parameter within this distance of 0 or 1 is treated as
// landing exactly on an existing endpoint.
const endpointSnapEpsilon = 1e-9

// axisOrders lists the 6 permutations of X/Y/Z, already in lexicographic
// order so a stable sort by (distance, AxisOrder) applies the tie-break
// directly.
var axisOrders = []string{"XYZ", "XZY", "YXZ", "YZX", "ZXY", "ZYX"}

// Connect finds the edge nearest to point among edges/coords, projects
// point onto it, and builds up to k Manhattan approach routes plus the
// extra nodes/edges needed to splice point into the graph as a node tagged
// core.SystemExternal. nextTramoID is the first tramo ID safe to assign to
// a newly created approach edge (the caller should pass one greater than
// any ID already in use).
//
// Fails with ErrNoEdgeFound if edges is empty, or ErrProjectionDegenerate
// if every candidate edge has zero length.
func Connect(point core.Point, edges []core.Edge, coords map[string]r3.Vec, nextTramoID uint64, k int, opts ...spatial.Option) (*Result, error) {
	if k <= 0 {
		k = DefaultK
	}
	if len(edges) == 0 {
		return nil, ErrNoEdgeFound
	}

	idx, err := spatial.Build(edges, coords, opts...)
	if err != nil {
		return nil, err
	}

	edge, proj, t, dist, err := idx.NearestEdge(point.Vec)
	if err != nil {
		return nil, ErrProjectionDegenerate
	}

	externalKey := point.Key
	if externalKey == "" {
		externalKey = core.CanonicalKey(point.Vec)
	}
	external := core.Node{Key: externalKey, Coord: point.Vec, Sys: core.SystemExternal}

	var connection core.Node
	var extraNodes []core.Node
	var extraEdges []core.Edge
	var hiddenTramoID uint64

	switch {
	case t <= endpointSnapEpsilon:
		connection = nodeOf(edge.From, coords, edge.Sys)
	case t >= 1-endpointSnapEpsilon:
		connection = nodeOf(edge.To, coords, edge.Sys)
	default:
		connection = core.Node{Key: core.CanonicalKey(proj), Coord: proj, Sys: edge.Sys}
		extraNodes = append(extraNodes, connection)
		hiddenTramoID = edge.TramoID
		extraEdges = append(extraEdges,
			core.Edge{TramoID: edge.TramoID, From: edge.From, To: connection.Key, Sys: edge.Sys},
			core.Edge{TramoID: edge.TramoID, From: connection.Key, To: edge.To, Sys: edge.Sys},
		)
	}

	routes := buildRoutes(point.Vec, connection.Coord)
	if len(routes) > k {
		routes = routes[:k]
	}

	extraNodes = append([]core.Node{external}, extraNodes...)
	nextID := nextTramoID
	for _, route := range routes {
		from := externalKey
		for _, wp := range route.Waypoints {
			toKey := core.CanonicalKey(wp)
			if wp == connection.Coord {
				toKey = connection.Key
			}
			if toKey == from {
				continue
			}
			extraEdges = append(extraEdges, core.Edge{TramoID: nextID, From: from, To: toKey, Sys: core.SystemExternal})
			extraNodes = append(extraNodes, core.Node{Key: toKey, Coord: wp, Sys: core.SystemExternal})
			nextID++
			from = toKey
		}
	}

	return &Result{
		ExternalNode:   external,
		ConnectionNode: connection,
		NearestEdge:    edge,
		Quality:        spatial.BucketFor(dist),
		Routes:         routes,
		ExtraNodes:     extraNodes,
		ExtraEdges:     extraEdges,
		HiddenTramoID:  hiddenTramoID,
	}, nil
}

func nodeOf(key string, coords map[string]r3.Vec, sys core.SystemTag) core.Node {
	return core.Node{Key: key, Coord: coords[key], Sys: sys}
}

// buildRoutes enumerates the 6 axis-ordered Manhattan approaches from a to
// b and collapses duplicates produced when one or more deltas are zero.
// All surviving routes are equal in Manhattan distance; Connect truncates
// to the caller's k using the lexicographic axis-order tie-break already
// baked into axisOrders.
func buildRoutes(a, b r3.Vec) []Route {
	manhattan := absF(b.X-a.X) + absF(b.Y-a.Y) + absF(b.Z-a.Z)

	seen := make(map[string]struct{})
	var out []Route
	for _, order := range axisOrders {
		cur := a
		var waypoints []r3.Vec
		for _, axis := range order {
			switch axis {
			case 'X':
				cur.X = b.X
			case 'Y':
				cur.Y = b.Y
			case 'Z':
				cur.Z = b.Z
			}
			waypoints = append(waypoints, cur)
		}

		// Drop waypoints that coincide with the start or their predecessor,
		// then key on the whole remaining route.
		route := dedupeCollinear(append([]r3.Vec{a}, waypoints...))[1:]
		if len(route) == 0 {
			route = waypoints[len(waypoints)-1:] // a == b: one zero-length hop
		}
		sig := fmt.Sprint(route)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}

		out = append(out, Route{AxisOrder: order, Waypoints: route, Distance: manhattan})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].AxisOrder < out[j].AxisOrder })

	return out
}

// dedupeCollinear drops a waypoint that coincides with its predecessor,
// which happens whenever the corresponding axis delta was zero.
func dedupeCollinear(waypoints []r3.Vec) []r3.Vec {
	out := waypoints[:0:0]
	var prev r3.Vec
	first := true
	for _, wp := range waypoints {
		if !first && wp == prev {
			continue
		}
		out = append(out, wp)
		prev = wp
		first = false
	}
	return out
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
