package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/core"
	"github.com/cadimo/pathcore/spatial"
)

func sampleIndex(t *testing.T) *spatial.Index {
	t.Helper()
	coords := map[string]r3.Vec{
		"a": {X: 0, Y: 0, Z: 0},
		"b": {X: 10, Y: 0, Z: 0},
		"c": {X: 10, Y: 10, Z: 0},
	}
	edges := []core.Edge{
		{TramoID: 1, From: "a", To: "b", Sys: core.SystemA},
		{TramoID: 2, From: "b", To: "c", Sys: core.SystemA},
	}
	idx, err := spatial.Build(edges, coords)
	require.NoError(t, err)
	return idx
}

func TestNearestNode_ExactHit(t *testing.T) {
	idx := sampleIndex(t)
	key, dist, quality, err := idx.NearestNode(r3.Vec{X: 0, Y: 0, Z: 0}, 0.01)
	require.NoError(t, err)
	assert.Equal(t, "a", key)
	assert.InDelta(t, 0, dist, 1e-9)
	assert.Equal(t, spatial.Excellent, quality)
}

func TestNearestNode_WithinTolerance(t *testing.T) {
	idx := sampleIndex(t)
	key, _, _, err := idx.NearestNode(r3.Vec{X: 0.05, Y: 0, Z: 0}, 1.0)
	require.NoError(t, err)
	assert.Equal(t, "a", key)
}

func TestNearestNode_OutOfTolerance(t *testing.T) {
	idx := sampleIndex(t)
	_, _, _, err := idx.NearestNode(r3.Vec{X: 500, Y: 500, Z: 500}, 0.01)
	assert.ErrorIs(t, err, spatial.ErrNoNearestNode)
}

func TestNearestEdge_Projection(t *testing.T) {
	idx := sampleIndex(t)
	e, proj, tt, dist, err := idx.NearestEdge(r3.Vec{X: 5, Y: 1, Z: 0})
	require.NoError(t, err)
	assert.EqualValues(t, 1, e.TramoID)
	assert.InDelta(t, 5, proj.X, 1e-9)
	assert.InDelta(t, 0.5, tt, 1e-9)
	assert.InDelta(t, 1, dist, 1e-9)
}

func TestProjectPointToSegment_ClampsParameter(t *testing.T) {
	a := r3.Vec{X: 0, Y: 0, Z: 0}
	b := r3.Vec{X: 10, Y: 0, Z: 0}
	dist, proj, tt := spatial.ProjectPointToSegment(r3.Vec{X: -5, Y: 0, Z: 0}, a, b)
	assert.Equal(t, 0.0, tt)
	assert.Equal(t, a, proj)
	assert.InDelta(t, 5, dist, 1e-9)
}

func TestBucketFor(t *testing.T) {
	assert.Equal(t, spatial.Excellent, spatial.BucketFor(0.05))
	assert.Equal(t, spatial.VeryGood, spatial.BucketFor(0.3))
	assert.Equal(t, spatial.Good, spatial.BucketFor(0.9))
	assert.Equal(t, spatial.Poor, spatial.BucketFor(5))
}

func TestNearestNode_EmptyIndex(t *testing.T) {
	idx, err := spatial.Build(nil, nil)
	require.NoError(t, err)
	_, _, _, err = idx.NearestNode(r3.Vec{}, 1)
	assert.ErrorIs(t, err, spatial.ErrEmptyIndex)
}
