// File: index.go
// Role: Build the uniform 3D grid over a filtered edge set and answer
// NearestNode queries with shell expansion and a brute-force fallback.
package spatial

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/core"
)

// Index is a uniform-cell 3D grid over a fixed set of edges, used to
// resolve query points to graph nodes or onto edges.
type Index struct {
	cfg      Config
	origin   r3.Vec
	min, max r3.Vec
	diagonal float64
	cells    map[cellCoord][]int
	edges    []core.Edge
	coords   map[string]r3.Vec
}

// DefaultCellSize computes min(avg_cubic, 2*avg_edge_length) for a set of
// nodes/edges.
func DefaultCellSize(nodeCount int, min, max r3.Vec, edges []core.Edge, coords map[string]r3.Vec) float64 {
	volume := (max.X - min.X) * (max.Y - min.Y) * (max.Z - min.Z)
	if volume <= 0 || nodeCount == 0 {
		volume = 1
		nodeCount = 1
	}
	avgCubic := math.Cbrt(volume / float64(nodeCount))

	var sum float64
	for _, e := range edges {
		a, aok := coords[e.From]
		b, bok := coords[e.To]
		if !aok || !bok {
			continue
		}
		sum += r3.Norm(r3.Sub(b, a))
	}
	avgEdgeLen := 1.0
	if len(edges) > 0 {
		avgEdgeLen = sum / float64(len(edges))
	}

	size := math.Min(avgCubic, 2*avgEdgeLen)
	if size <= 0 {
		size = 1
	}

	return size
}

// Build indexes edges by walking each segment through every grid cell it
// touches (a DDA-like traversal over the segment's max-axis step count).
//
// coords must contain the coordinate of every endpoint referenced by
// edges. Complexity: O(E * cellsPerSegment).
func Build(edges []core.Edge, coords map[string]r3.Vec, opts ...Option) (*Index, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	idx := &Index{cfg: cfg, cells: make(map[cellCoord][]int), edges: edges, coords: coords}
	if len(edges) == 0 {
		return idx, nil
	}

	first := true
	for _, e := range edges {
		for _, key := range [2]string{e.From, e.To} {
			v, ok := coords[key]
			if !ok {
				return nil, fmt.Errorf("spatial: missing coordinate for node %s", key)
			}
			if first {
				idx.min, idx.max = v, v
				first = false
				continue
			}
			idx.min = r3.Vec{X: math.Min(idx.min.X, v.X), Y: math.Min(idx.min.Y, v.Y), Z: math.Min(idx.min.Z, v.Z)}
			idx.max = r3.Vec{X: math.Max(idx.max.X, v.X), Y: math.Max(idx.max.Y, v.Y), Z: math.Max(idx.max.Z, v.Z)}
		}
	}
	idx.origin = idx.min
	idx.diagonal = r3.Norm(r3.Sub(idx.max, idx.min))

	if cfg.CellSize > 0 {
		idx.cfg.CellSize = cfg.CellSize
	} else {
		idx.cfg.CellSize = DefaultCellSize(len(coords), idx.min, idx.max, edges, coords)
	}

	for i, e := range edges {
		a := coords[e.From]
		b := coords[e.To]
		for _, c := range cellsAlongSegment(a, b, idx.origin, idx.cfg.CellSize) {
			idx.cells[c] = append(idx.cells[c], i)
		}
	}

	return idx, nil
}

// cellsAlongSegment enumerates every grid cell touched by segment a-b using
// a DDA-like walk over the max-axis step count.
func cellsAlongSegment(a, b, origin r3.Vec, size float64) []cellCoord {
	ca := cellOf(a, origin, size)
	cb := cellOf(b, origin, size)

	steps := maxI64(absI64(cb[0]-ca[0]), maxI64(absI64(cb[1]-ca[1]), absI64(cb[2]-ca[2])))
	if steps == 0 {
		return []cellCoord{ca}
	}

	out := make([]cellCoord, 0, steps+1)
	seen := make(map[cellCoord]struct{}, steps+1)
	for i := int64(0); i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
		c := cellOf(p, origin, size)
		if _, dup := seen[c]; !dup {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}

func absI64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// isDistant reports whether p is farther than DistantFactor * diagonal
// outside the bounding box, the trigger for the brute-force fallback.
func (idx *Index) isDistant(p r3.Vec) bool {
	if idx.diagonal == 0 {
		return false
	}
	clamped := r3.Vec{
		X: clamp(p.X, idx.min.X, idx.max.X),
		Y: clamp(p.Y, idx.min.Y, idx.max.Y),
		Z: clamp(p.Z, idx.min.Z, idx.max.Z),
	}
	return r3.Norm(r3.Sub(p, clamped)) > idx.cfg.DistantFactor*idx.diagonal
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
