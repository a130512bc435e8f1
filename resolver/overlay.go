// File: overlay.go
// Role: the per-search overlay — a thin table of virtual nodes and
// replacement sub-edges, consulted overlay-then-base, never mutating the
// base core.Graph.
package resolver

import (
	"github.com/cadimo/pathcore/core"
)

// Overlay accumulates virtual nodes and edges created while resolving the
// waypoints of a single search. The zero value is not usable; construct
// with NewOverlay.
type Overlay struct {
	nodes          map[string]core.Node
	subEdgesByNode map[string][]core.Edge
	allSubEdges    []core.Edge
	hidden         map[uint64]struct{}
}

// NewOverlay returns an empty Overlay.
func NewOverlay() *Overlay {
	return &Overlay{
		nodes:          make(map[string]core.Node),
		subEdgesByNode: make(map[string][]core.Edge),
		hidden:         make(map[uint64]struct{}),
	}
}

// HasNode reports whether key names a virtual node already inserted.
func (o *Overlay) HasNode(key string) bool {
	_, ok := o.nodes[key]
	return ok
}

// Node returns the virtual node stored under key.
func (o *Overlay) Node(key string) (core.Node, bool) {
	n, ok := o.nodes[key]
	return n, ok
}

// IsHidden reports whether an original edge's tramo ID has been replaced
// by a split and must no longer be walked directly.
func (o *Overlay) IsHidden(tramoID uint64) bool {
	_, ok := o.hidden[tramoID]
	return ok
}

// SubEdgesAt returns the overlay sub-edges incident to key.
func (o *Overlay) SubEdgesAt(key string) []core.Edge {
	return o.subEdgesByNode[key]
}

// AllSubEdges returns every sub-edge created by splits so far.
func (o *Overlay) AllSubEdges() []core.Edge {
	return o.allSubEdges
}

// Split inserts a virtual node at proj on edge e, replacing e with two
// sub-edges that each inherit e's system tag and tramo ID: forbidding
// e.TramoID still forbids both halves.
func (o *Overlay) Split(e core.Edge, proj core.Node) {
	o.nodes[proj.Key] = proj
	o.hidden[e.TramoID] = struct{}{}

	subA := core.Edge{TramoID: e.TramoID, From: e.From, To: proj.Key, Sys: e.Sys}
	subB := core.Edge{TramoID: e.TramoID, From: proj.Key, To: e.To, Sys: e.Sys}

	o.addEdge(subA)
	o.addEdge(subB)
}

// AddNode registers a virtual node without any incident edges, used when a
// node is added for bookkeeping only (e.g. an external node whose edges are
// added separately via AddEdge).
func (o *Overlay) AddNode(n core.Node) {
	o.nodes[n.Key] = n
}

// AddEdge indexes e as incident to both of its endpoints, making it walkable
// by View.Neighbors from either side.
func (o *Overlay) AddEdge(e core.Edge) {
	o.addEdge(e)
}

// Hide marks tramoID as replaced: View.Neighbors will no longer surface the
// base edge carrying it.
func (o *Overlay) Hide(tramoID uint64) {
	if tramoID == 0 {
		return
	}
	o.hidden[tramoID] = struct{}{}
}

// MergeExternal folds the extra nodes and edges produced by connector.Connect
// into the overlay: every node becomes a virtual node, every edge becomes a
// walkable sub-edge, and hiddenTramoID (if non-zero) is hidden the same way
// a Split hides the tramo it replaces.
func (o *Overlay) MergeExternal(nodes []core.Node, edges []core.Edge, hiddenTramoID uint64) {
	for _, n := range nodes {
		o.AddNode(n)
	}
	for _, e := range edges {
		o.addEdge(e)
	}
	o.Hide(hiddenTramoID)
}

func (o *Overlay) addEdge(e core.Edge) {
	o.subEdgesByNode[e.From] = append(o.subEdgesByNode[e.From], e)
	o.subEdgesByNode[e.To] = append(o.subEdgesByNode[e.To], e)
	o.allSubEdges = append(o.allSubEdges, e)
}
