package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/astar"
)

// stubGraph is a minimal in-memory astar.Graph for unit tests: a square
// a-b-c-d-a plus a diagonal a-c (tramo 5) that should win on distance.
type stubGraph struct {
	coords map[string]r3.Vec
	adj    map[string][]astar.Neighbor
}

func (s *stubGraph) Coord(key string) (r3.Vec, bool) { v, ok := s.coords[key]; return v, ok }
func (s *stubGraph) Neighbors(key string) []astar.Neighbor { return s.adj[key] }

func square() *stubGraph {
	coords := map[string]r3.Vec{
		"a": {X: 0, Y: 0, Z: 0},
		"b": {X: 1, Y: 0, Z: 0},
		"c": {X: 1, Y: 1, Z: 0},
		"d": {X: 0, Y: 1, Z: 0},
	}
	w := func(a, b string) float64 { return r3.Norm(r3.Sub(coords[a], coords[b])) }
	adj := map[string][]astar.Neighbor{
		"a": {{NodeKey: "b", TramoID: 1, Weight: w("a", "b")}, {NodeKey: "d", TramoID: 4, Weight: w("a", "d")}, {NodeKey: "c", TramoID: 5, Weight: w("a", "c")}},
		"b": {{NodeKey: "a", TramoID: 1, Weight: w("a", "b")}, {NodeKey: "c", TramoID: 2, Weight: w("b", "c")}},
		"c": {{NodeKey: "b", TramoID: 2, Weight: w("b", "c")}, {NodeKey: "d", TramoID: 3, Weight: w("c", "d")}, {NodeKey: "a", TramoID: 5, Weight: w("a", "c")}},
		"d": {{NodeKey: "a", TramoID: 4, Weight: w("a", "d")}, {NodeKey: "c", TramoID: 3, Weight: w("c", "d")}},
	}
	return &stubGraph{coords: coords, adj: adj}
}

func TestSearch_PrefersDiagonal(t *testing.T) {
	g := square()
	res, err := astar.Search(context.Background(), g, "a", "c", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, res.Path)
	assert.InDelta(t, 1.4142135623730951, res.Distance, 1e-9)
}

func TestSearch_ForbiddenEdgeForcesDetour(t *testing.T) {
	g := square()
	res, err := astar.Search(context.Background(), g, "a", "c", map[uint64]struct{}{5: {}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, res.Path)
	assert.InDelta(t, 2.0, res.Distance, 1e-9)
}

func TestSearch_UnknownEndpoint(t *testing.T) {
	g := square()
	_, err := astar.Search(context.Background(), g, "a", "zzz", nil)
	assert.ErrorIs(t, err, astar.ErrUnknownEndpoint)
}

func TestSearch_Unreachable(t *testing.T) {
	g := square()
	g.coords["e"] = r3.Vec{X: 99, Y: 99, Z: 99}
	g.adj["e"] = nil
	_, err := astar.Search(context.Background(), g, "a", "e", nil)
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

func TestSearch_SameStartAndGoal(t *testing.T) {
	g := square()
	res, err := astar.Search(context.Background(), g, "a", "a", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, res.Path)
	assert.Equal(t, 0.0, res.Distance)
}

func TestSearch_Cancelled(t *testing.T) {
	g := square()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := astar.Search(ctx, g, "a", "c", nil)
	assert.ErrorIs(t, err, astar.ErrCancelled)
}
