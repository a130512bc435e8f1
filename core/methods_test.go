package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/core"
)

func sampleSpecs() ([]core.NodeSpec, []core.EdgeSpec) {
	nodes := []core.NodeSpec{
		{Key: "(0, 0, 0)", Sys: core.SystemA, Vec: r3.Vec{X: 0, Y: 0, Z: 0}},
		{Key: "(1, 0, 0)", Sys: core.SystemA, Vec: r3.Vec{X: 1, Y: 0, Z: 0}},
		{Key: "(2, 0, 0)", Sys: core.SystemB, Vec: r3.Vec{X: 2, Y: 0, Z: 0}},
	}
	edges := []core.EdgeSpec{
		{From: "(0, 0, 0)", To: "(1, 0, 0)", Sys: core.SystemA},
		{From: "(1, 0, 0)", To: "(2, 0, 0)", Sys: core.SystemB},
	}
	return nodes, edges
}

func TestLoadTaggedGraph_AutoTramoIDs(t *testing.T) {
	nodes, edges := sampleSpecs()
	g, err := core.LoadTaggedGraph(nodes, edges, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	id, ok := g.TramoMap().Lookup("(0, 0, 0)", "(1, 0, 0)")
	require.True(t, ok)
	e, ok := g.Edge(id)
	require.True(t, ok)
	assert.Equal(t, core.SystemA, e.Sys)
}

func TestLoadTaggedGraph_ExplicitTramoMap(t *testing.T) {
	nodes, edges := sampleSpecs()
	tramo := map[string]uint64{
		core.TramoKey("(0, 0, 0)", "(1, 0, 0)"): 101,
		core.TramoKey("(1, 0, 0)", "(2, 0, 0)"): 202,
	}
	g, err := core.LoadTaggedGraph(nodes, edges, tramo)
	require.NoError(t, err)
	e, ok := g.Edge(101)
	require.True(t, ok)
	assert.Equal(t, "(0, 0, 0)", e.From)
}

func TestLoadTaggedGraph_MissingSystemTag(t *testing.T) {
	nodes, edges := sampleSpecs()
	nodes[0].Sys = ""
	_, err := core.LoadTaggedGraph(nodes, edges, nil)
	assert.ErrorIs(t, err, core.ErrMissingSystemTag)
}

func TestLoadTaggedGraph_DanglingEdge(t *testing.T) {
	nodes, edges := sampleSpecs()
	edges = append(edges, core.EdgeSpec{From: "(1, 0, 0)", To: "(9, 9, 9)", Sys: core.SystemA})
	_, err := core.LoadTaggedGraph(nodes, edges, nil)
	assert.ErrorIs(t, err, core.ErrDanglingEdge)
}

func TestLoadTaggedGraph_DuplicateTramoID(t *testing.T) {
	nodes, edges := sampleSpecs()
	tramo := map[string]uint64{
		core.TramoKey("(0, 0, 0)", "(1, 0, 0)"): 1,
		core.TramoKey("(1, 0, 0)", "(2, 0, 0)"): 1,
	}
	_, err := core.LoadTaggedGraph(nodes, edges, tramo)
	assert.ErrorIs(t, err, core.ErrDuplicateTramoID)
}

func TestLoadTaggedGraph_TramoMapMismatch(t *testing.T) {
	nodes, edges := sampleSpecs()
	tramo := map[string]uint64{
		core.TramoKey("(0, 0, 0)", "(1, 0, 0)"): 1,
	}
	_, err := core.LoadTaggedGraph(nodes, edges, tramo)
	assert.ErrorIs(t, err, core.ErrTramoMapMismatch)
}

func TestGraph_Bounds(t *testing.T) {
	nodes, edges := sampleSpecs()
	g, err := core.LoadTaggedGraph(nodes, edges, nil)
	require.NoError(t, err)
	min, max, ok := g.Bounds()
	require.True(t, ok)
	assert.Equal(t, 0.0, min.X)
	assert.Equal(t, 2.0, max.X)
}

func TestEdge_Other(t *testing.T) {
	e := core.Edge{From: "a", To: "b"}
	assert.Equal(t, "b", e.Other("a"))
	assert.Equal(t, "a", e.Other("b"))
}

func TestTramoKey_Lexicographic(t *testing.T) {
	assert.Equal(t, core.TramoKey("a", "b"), core.TramoKey("b", "a"))
}
