// File: types.go
// Role: the Graph interface consumed by Search, its Neighbor value type,
// and the lazy-decrease-key priority queue.
package astar

import "gonum.org/v1/gonum/spatial/r3"

// Neighbor describes one edge reachable from a node during expansion.
type Neighbor struct {
	NodeKey string
	TramoID uint64
	Weight  float64
}

// Graph is the minimal surface Search needs: overlay-aware neighbor
// iteration and coordinate lookup for the heuristic. resolver.View is the
// production implementation; tests may supply a plain map-backed stub.
type Graph interface {
	Neighbors(key string) []Neighbor
	Coord(key string) (r3.Vec, bool)
}

// nodeItem is one entry in the open-set heap: a candidate node and its
// tentative f = g + h score at the time it was pushed.
type nodeItem struct {
	key string
	g   float64
	f   float64
}

// nodePQ is a min-heap of *nodeItem ordered by f ascending. It uses
// lazy-decrease-key: a cheaper path to an already-queued node pushes a new
// entry instead of mutating the old one, and stale entries are skipped on
// pop via the gScore/closed check.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
