// File: methods.go
// Role: LoadTaggedGraph constructor and the read-only Graph query surface.
// AI-HINT (file):
//   - LoadTaggedGraph takes already decoded node/edge/tramo descriptions
//     (format-agnostic) and rejects anything structurally invalid. Package
//     ioformat owns JSON decoding.
//   - Node, Edge, HasNode, TramoMap and IncidentEdges are O(1); Nodes,
//     Edges, Bounds and Stats walk the whole graph. None mutate g.
package core

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// NodeSpec is the decoded form of one entry of the tagged-graph "nodes" map.
type NodeSpec struct {
	Key string
	Sys SystemTag
	Vec r3.Vec
}

// EdgeSpec is the decoded form of one entry of the tagged-graph "edges" array.
type EdgeSpec struct {
	From string
	To   string
	Sys  SystemTag
}

// LoadTaggedGraph builds a Graph from decoded nodes/edges and an optional
// tramo map (canonical edge key -> tramo ID). When tramoMap is nil, tramo
// IDs are assigned deterministically in edges' input order starting at 1.
//
// Fails with ErrMissingSystemTag, ErrDanglingEdge, ErrDuplicateTramoID,
// ErrTramoMapMismatch, ErrEmptyKey, or ErrDuplicateNode.
func LoadTaggedGraph(nodes []NodeSpec, edges []EdgeSpec, tramoMap map[string]uint64) (*Graph, error) {
	g := &Graph{
		nodes: make(map[string]Node, len(nodes)),
		edges: make(map[uint64]Edge, len(edges)),
		adj:   make(map[string][]uint64, len(nodes)),
		tramo: NewTramoMap(),
	}

	for _, ns := range nodes {
		if ns.Key == "" {
			return nil, ErrEmptyKey
		}
		if ns.Sys == "" {
			return nil, fmt.Errorf("%w: node %s", ErrMissingSystemTag, ns.Key)
		}
		if _, exists := g.nodes[ns.Key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, ns.Key)
		}
		g.nodes[ns.Key] = Node{Key: ns.Key, Coord: ns.Vec, Sys: ns.Sys}
	}

	var nextID uint64 = 1
	for i, es := range edges {
		if es.Sys == "" {
			return nil, fmt.Errorf("%w: edge %s-%s", ErrMissingSystemTag, es.From, es.To)
		}
		if _, ok := g.nodes[es.From]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrDanglingEdge, es.From)
		}
		if _, ok := g.nodes[es.To]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrDanglingEdge, es.To)
		}

		key := TramoKey(es.From, es.To)
		var id uint64
		if tramoMap != nil {
			var ok bool
			id, ok = tramoMap[key]
			if !ok {
				return nil, fmt.Errorf("%w: no tramo ID for edge %s (index %d)", ErrTramoMapMismatch, key, i)
			}
		} else {
			id = nextID
			nextID++
		}

		if err := g.tramo.register(es.From, es.To, id); err != nil {
			return nil, err
		}
		if _, exists := g.edges[id]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTramoID, id)
		}

		e := Edge{TramoID: id, From: es.From, To: es.To, Sys: es.Sys}
		g.edges[id] = e
		g.adj[es.From] = append(g.adj[es.From], id)
		if es.To != es.From {
			g.adj[es.To] = append(g.adj[es.To], id)
		}
	}

	if tramoMap != nil && len(tramoMap) != len(edges) {
		return nil, fmt.Errorf("%w: tramo map has %d entries, graph has %d edges", ErrTramoMapMismatch, len(tramoMap), len(edges))
	}

	for key := range g.adj {
		sort.Slice(g.adj[key], func(i, j int) bool { return g.adj[key][i] < g.adj[key][j] })
	}

	return g, nil
}

// Node returns the node stored under the given canonical key.
func (g *Graph) Node(key string) (Node, bool) {
	n, ok := g.nodes[key]
	return n, ok
}

// Edge returns the edge stored under the given tramo ID.
func (g *Graph) Edge(tramoID uint64) (Edge, bool) {
	e, ok := g.edges[tramoID]
	return e, ok
}

// HasNode reports whether key identifies a node in the graph.
func (g *Graph) HasNode(key string) bool {
	_, ok := g.nodes[key]
	return ok
}

// TramoMap exposes the graph's edge-identity bijection.
func (g *Graph) TramoMap() TramoMap { return g.tramo }

// IncidentEdges returns the tramo IDs of every edge touching key, sorted
// ascending. It returns nil for a key with no incident edges.
func (g *Graph) IncidentEdges(key string) []uint64 {
	return g.adj[key]
}

// Nodes returns every node, sorted by canonical key.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// Edges returns every edge, sorted by tramo ID.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TramoID < out[j].TramoID })

	return out
}

// NodeCount reports the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount reports the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Bounds returns the axis-aligned bounding box over all node coordinates.
// It returns ok=false for an empty graph.
func (g *Graph) Bounds() (min, max r3.Vec, ok bool) {
	first := true
	for _, n := range g.nodes {
		if first {
			min, max = n.Coord, n.Coord
			first = false
			continue
		}
		min = r3.Vec{X: minF(min.X, n.Coord.X), Y: minF(min.Y, n.Coord.Y), Z: minF(min.Z, n.Coord.Z)}
		max = r3.Vec{X: maxF(max.X, n.Coord.X), Y: maxF(max.Y, n.Coord.Y), Z: maxF(max.Z, n.Coord.Z)}
	}

	return min, max, !first
}

// Stats produces an O(V+E) read-only summary of the graph's size.
func (g *Graph) Stats() GraphStats {
	seen := make(map[SystemTag]struct{})
	for _, n := range g.nodes {
		seen[n.Sys] = struct{}{}
	}
	for _, e := range g.edges {
		seen[e.Sys] = struct{}{}
	}

	return GraphStats{NodeCount: len(g.nodes), EdgeCount: len(g.edges), SystemSet: sortedTags(seen)}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
