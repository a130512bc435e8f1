// File: types.go
// Role: Point/Node/Edge/TramoMap value types and the read-only Graph catalog.
// Concurrency: Graph is built once by LoadTaggedGraph and never mutated
// afterward, so its nodes/edges/adj/tramo fields are safe for concurrent
// reads without any locking.
package core

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// SystemTag is a closed, string-keyed partition label for nodes and edges.
// The canonical reference deployment uses two values, SystemA and SystemB,
// plus the distinguished SystemExternal used by package connector; the
// domain is extensible by configuration (see cablefilter.CableTable) and
// not by adding new Go constants.
type SystemTag string

// Reference system tags.
const (
	// SystemA is one of the two reference cable-run systems.
	SystemA SystemTag = "A"
	// SystemB is the other reference cable-run system.
	SystemB SystemTag = "B"
	// SystemExternal marks a node injected by package connector: it is
	// excluded from ordinary cable-system filtering and is only legal as
	// an explicit endpoint or PPO.
	SystemExternal SystemTag = "EXTERNAL"
)

// Point is a 3D coordinate. Vec carries the numeric triple for geometry;
// Key carries the exact textual form supplied on load, so canonical node
// keys and TramoMap keys never drift from the caller's own formatting.
type Point struct {
	Key string
	Vec r3.Vec
}

// String returns the canonical key, unchanged from construction.
func (p Point) String() string { return p.Key }

// CanonicalKey formats (x, y, z) using the reference textual convention.
// It is only used when a caller has no pre-existing string form (e.g. a
// freshly computed projection point in package resolver); loaded points
// always keep their original text instead of round-tripping through this.
func CanonicalKey(v r3.Vec) string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Node is an immutable (coordinate, system tag) pair identified by its
// canonical key.
type Node struct {
	Key   string
	Coord r3.Vec
	Sys   SystemTag
}

// Edge is an undirected pair of node keys plus a system tag and a tramo ID.
// TramoID is the stable integer identity used by ForbiddenSet membership
// and by diagnostics; it is never reused within a Graph.
type Edge struct {
	TramoID uint64
	From    string
	To      string
	Sys     SystemTag
}

// Other returns the endpoint of e that is not key. It panics if key is
// neither endpoint — callers only invoke it after confirming membership.
func (e Edge) Other(key string) string {
	if e.From == key {
		return e.To
	}
	if e.To == key {
		return e.From
	}
	panic("core: Edge.Other called with a key that is not an endpoint")
}

// TramoKey returns the canonical, direction-independent edge key
// "keyLo-keyHi" with endpoints in lexicographic order.
func TramoKey(a, b string) string {
	if a <= b {
		return a + "-" + b
	}
	return b + "-" + a
}

// TramoMap is a bijection between canonical edge keys and tramo IDs.
type TramoMap struct {
	idByKey map[string]uint64
	keyByID map[uint64]string
}

// NewTramoMap returns an empty TramoMap.
func NewTramoMap() TramoMap {
	return TramoMap{idByKey: make(map[string]uint64), keyByID: make(map[uint64]string)}
}

// Lookup returns the tramo ID registered for the undirected pair (a, b).
func (m TramoMap) Lookup(a, b string) (uint64, bool) {
	id, ok := m.idByKey[TramoKey(a, b)]
	return id, ok
}

// KeyFor returns the canonical edge key registered for a tramo ID.
func (m TramoMap) KeyFor(id uint64) (string, bool) {
	k, ok := m.keyByID[id]
	return k, ok
}

// Len reports how many edge keys are registered.
func (m TramoMap) Len() int { return len(m.idByKey) }

func (m TramoMap) register(a, b string, id uint64) error {
	key := TramoKey(a, b)
	if existingID, ok := m.idByKey[key]; ok && existingID != id {
		return fmt.Errorf("%w: edge %s already mapped to tramo %d, got %d", ErrDuplicateTramoID, key, existingID, id)
	}
	if existingKey, ok := m.keyByID[id]; ok && existingKey != key {
		return fmt.Errorf("%w: tramo %d already mapped to edge %s, got %s", ErrDuplicateTramoID, id, existingKey, key)
	}
	m.idByKey[key] = id
	m.keyByID[id] = key

	return nil
}

// Graph is the tagged 3D graph: a read-only catalog of Nodes and Edges
// plus the TramoMap that names every edge. It is safe for concurrent
// read access from multiple searches; nothing in package core mutates a
// Graph after LoadTaggedGraph returns it.
type Graph struct {
	nodes map[string]Node   // canonical key -> Node
	edges map[uint64]Edge   // tramo ID -> Edge
	adj   map[string][]uint64 // canonical key -> incident tramo IDs, sorted ascending
	tramo TramoMap
}

// GraphStats is a read-only summary of a Graph's size.
type GraphStats struct {
	NodeCount  int
	EdgeCount  int
	SystemSet  []SystemTag
}

// sortedTags returns the distinct system tags present in the graph, sorted.
func sortedTags(set map[SystemTag]struct{}) []SystemTag {
	out := make([]SystemTag, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
