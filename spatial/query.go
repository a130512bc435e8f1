// File: query.go
// Role: NearestNode and NearestEdge — the two public queries answered by
// an Index.
package spatial

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/core"
)

// NearestNode finds the graph node closest to query, expanding shells of
// grid cells until either a provably-closest candidate is found or
// cfg.MaxShellRadius is exhausted. It fails with ErrNoNearestNode if
// nothing lies within tol.
//
// When query is more than cfg.DistantFactor bounding-box diagonals outside
// the index's bounding box, shell expansion is skipped in favor of a
// brute-force scan.
func (idx *Index) NearestNode(query r3.Vec, tol float64) (key string, dist float64, quality MatchQuality, err error) {
	if len(idx.edges) == 0 {
		return "", 0, Poor, ErrEmptyIndex
	}

	var bestKey string
	bestDist := math.Inf(1)

	consider := func(k string, v r3.Vec) {
		d := r3.Norm(r3.Sub(query, v))
		if d < bestDist {
			bestDist = d
			bestKey = k
		}
	}

	if idx.isDistant(query) {
		for k, v := range idx.coords {
			consider(k, v)
		}
	} else {
		center := cellOf(query, idx.origin, idx.cfg.CellSize)
		seen := make(map[string]struct{})
		for r := 0; r <= idx.cfg.MaxShellRadius; r++ {
			for _, c := range shell(center, r) {
				for _, edgeIdx := range idx.cells[c] {
					e := idx.edges[edgeIdx]
					for _, k := range [2]string{e.From, e.To} {
						if _, dup := seen[k]; dup {
							continue
						}
						seen[k] = struct{}{}
						consider(k, idx.coords[k])
					}
				}
			}
			// Provably-closest early termination: once the best candidate is
			// no farther than the minimum distance to the next shell's boundary,
			// no unseen cell can hold a closer node.
			if bestKey != "" && bestDist <= 0.5*idx.cfg.CellSize*float64(r+1) {
				break
			}
		}
	}

	if bestKey == "" || bestDist > tol {
		return "", bestDist, BucketFor(bestDist), ErrNoNearestNode
	}

	return bestKey, bestDist, BucketFor(bestDist), nil
}

// shell enumerates the grid cells forming the surface of the cube of
// radius r centered on center (r==0 returns just center).
func shell(center cellCoord, r int) []cellCoord {
	if r == 0 {
		return []cellCoord{center}
	}
	ri := int64(r)
	var out []cellCoord
	for dx := -ri; dx <= ri; dx++ {
		for dy := -ri; dy <= ri; dy++ {
			for dz := -ri; dz <= ri; dz++ {
				if absI64(dx) != ri && absI64(dy) != ri && absI64(dz) != ri {
					continue // interior cell, already visited in a smaller shell
				}
				out = append(out, cellCoord{center[0] + dx, center[1] + dy, center[2] + dz})
			}
		}
	}

	return out
}

// NearestEdge returns the edge whose segment lies closest to query, along
// with its projection point and parameter t (clamped to [0,1]).
//
// Complexity: O(E) — it scans every indexed edge; the spatial grid only
// accelerates NearestNode.
func (idx *Index) NearestEdge(query r3.Vec) (edge core.Edge, proj r3.Vec, t float64, dist float64, err error) {
	if len(idx.edges) == 0 {
		return core.Edge{}, r3.Vec{}, 0, 0, ErrEmptyIndex
	}

	bestDist := math.Inf(1)
	var bestEdge core.Edge
	var bestProj r3.Vec
	var bestT float64
	found := false

	for _, e := range idx.edges {
		a, aok := idx.coords[e.From]
		b, bok := idx.coords[e.To]
		if !aok || !bok {
			continue
		}
		if a == b {
			continue // degenerate, skip
		}
		d, p, tt := ProjectPointToSegment(query, a, b)
		if d < bestDist {
			bestDist = d
			bestEdge = e
			bestProj = p
			bestT = tt
			found = true
		}
	}

	if !found {
		return core.Edge{}, r3.Vec{}, 0, 0, ErrDegenerateSegment
	}

	return bestEdge, bestProj, bestT, bestDist, nil
}

// ProjectPointToSegment projects p onto segment a-b, clamping the
// parameter t to [0,1], and returns the distance, the projection point,
// and t.
func ProjectPointToSegment(p, a, b r3.Vec) (dist float64, proj r3.Vec, t float64) {
	ab := r3.Sub(b, a)
	denom := r3.Dot(ab, ab)
	if denom == 0 {
		return r3.Norm(r3.Sub(p, a)), a, 0
	}

	t = r3.Dot(r3.Sub(p, a), ab) / denom
	t = clamp(t, 0, 1)
	proj = r3.Add(a, r3.Scale(t, ab))
	dist = r3.Norm(r3.Sub(p, proj))

	return dist, proj, t
}
