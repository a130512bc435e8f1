// File: astar.go
// Role: the Search entry point and its runner loop (init/process/relax
// split, lazy decrease-key heap, explicit runner state struct).
package astar

import (
	"container/heap"
	"context"

	"gonum.org/v1/gonum/spatial/r3"
)

// Result carries a successful search's reconstructed path and diagnostics.
type Result struct {
	Path          []string // node keys, start..goal inclusive
	TramoIDs      []uint64 // tramo ID of each consecutive pair in Path
	Distance      float64
	NodesExplored int
}

// Search runs A* from start to goal on g, skipping any edge whose tramo ID
// is in forbidden. forbidden may be nil (no edges forbidden).
//
// Fails with ErrUnknownEndpoint if start or goal has no known coordinate,
// ErrNoPath if the open set empties before reaching goal, or ErrCancelled
// if ctx is done before the search completes.
func Search(ctx context.Context, g Graph, start, goal string, forbidden map[uint64]struct{}) (*Result, error) {
	startCoord, ok := g.Coord(start)
	if !ok {
		return nil, ErrUnknownEndpoint
	}
	goalCoord, ok := g.Coord(goal)
	if !ok {
		return nil, ErrUnknownEndpoint
	}

	if start == goal {
		return &Result{Path: []string{start}, TramoIDs: nil, Distance: 0, NodesExplored: 0}, nil
	}

	r := &runner{
		g:        g,
		goal:     goal,
		goalVec:  goalCoord,
		forbidden: forbidden,
		gScore:   map[string]float64{start: 0},
		cameFrom: map[string]string{},
		viaTramo: map[string]uint64{},
		closed:   map[string]bool{},
	}
	heap.Init(&r.open)
	heap.Push(&r.open, &nodeItem{key: start, g: 0, f: heuristic(startCoord, goalCoord)})

	return r.run(ctx)
}

// runner holds the mutable state of a single A* execution.
type runner struct {
	g         Graph
	goal      string
	goalVec   r3.Vec
	forbidden map[uint64]struct{}

	open     nodePQ
	gScore   map[string]float64
	cameFrom map[string]string
	viaTramo map[string]uint64
	closed   map[string]bool

	nodesExplored int
}

func (r *runner) run(ctx context.Context) (*Result, error) {
	for r.open.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ErrCancelled
		default:
		}

		item := heap.Pop(&r.open).(*nodeItem)
		if r.closed[item.key] {
			continue // stale lazy-decrease-key entry
		}
		if item.g > r.gScore[item.key] {
			continue // superseded by a better path found after this was pushed
		}

		r.closed[item.key] = true
		r.nodesExplored++

		if item.key == r.goal {
			return r.reconstruct(item.key), nil
		}

		r.expand(item.key)
	}

	return nil, ErrNoPath
}

func (r *runner) expand(u string) {
	for _, nb := range r.g.Neighbors(u) {
		if r.closed[nb.NodeKey] {
			continue
		}
		if r.forbidden != nil {
			if _, blocked := r.forbidden[nb.TramoID]; blocked {
				continue
			}
		}

		tentativeG := r.gScore[u] + nb.Weight
		if existing, seen := r.gScore[nb.NodeKey]; seen && tentativeG >= existing {
			continue
		}

		r.gScore[nb.NodeKey] = tentativeG
		r.cameFrom[nb.NodeKey] = u
		r.viaTramo[nb.NodeKey] = nb.TramoID

		vCoord, ok := r.g.Coord(nb.NodeKey)
		h := 0.0
		if ok {
			h = heuristic(vCoord, r.goalVec)
		}
		heap.Push(&r.open, &nodeItem{key: nb.NodeKey, g: tentativeG, f: tentativeG + h})
	}
}

func (r *runner) reconstruct(goal string) *Result {
	var path []string
	var tramoIDs []uint64

	cur := goal
	for {
		path = append([]string{cur}, path...)
		prev, ok := r.cameFrom[cur]
		if !ok {
			break
		}
		tramoIDs = append([]uint64{r.viaTramo[cur]}, tramoIDs...)
		cur = prev
	}

	return &Result{
		Path:          path,
		TramoIDs:      tramoIDs,
		Distance:      r.gScore[goal],
		NodesExplored: r.nodesExplored,
	}
}

func heuristic(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(b, a))
}
