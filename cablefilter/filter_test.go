package cablefilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/cablefilter"
	"github.com/cadimo/pathcore/core"
)

func buildGraph(t *testing.T) *core.Graph {
	t.Helper()
	nodes := []core.NodeSpec{
		{Key: "a", Sys: core.SystemA, Vec: r3.Vec{}},
		{Key: "b", Sys: core.SystemA, Vec: r3.Vec{X: 1}},
		{Key: "c", Sys: core.SystemB, Vec: r3.Vec{X: 2}},
	}
	edges := []core.EdgeSpec{
		{From: "a", To: "b", Sys: core.SystemA},
		{From: "b", To: "c", Sys: core.SystemB},
	}
	g, err := core.LoadTaggedGraph(nodes, edges, nil)
	require.NoError(t, err)
	return g
}

func TestFilteredAdjacency_CableA(t *testing.T) {
	g := buildGraph(t)
	table := cablefilter.DefaultCableTable()
	adj, err := cablefilter.FilteredAdjacency(g, table, "A")
	require.NoError(t, err)
	assert.Len(t, adj["a"], 1)
	assert.Len(t, adj["c"], 0)
}

func TestFilteredAdjacency_CableC(t *testing.T) {
	g := buildGraph(t)
	table := cablefilter.DefaultCableTable()
	adj, err := cablefilter.FilteredAdjacency(g, table, "C")
	require.NoError(t, err)
	assert.Len(t, adj["b"], 2)
}

func TestFilteredAdjacency_UnknownCable(t *testing.T) {
	g := buildGraph(t)
	table := cablefilter.DefaultCableTable()
	_, err := cablefilter.FilteredAdjacency(g, table, "Z")
	assert.ErrorIs(t, err, cablefilter.ErrUnknownCable)
}

func TestValidateEndpoint(t *testing.T) {
	g := buildGraph(t)
	table := cablefilter.DefaultCableTable()
	assert.NoError(t, cablefilter.ValidateEndpoint(g, "a", table, "A"))
	assert.ErrorIs(t, cablefilter.ValidateEndpoint(g, "c", table, "A"), cablefilter.ErrEndpointInForbiddenSystem)
	assert.ErrorIs(t, cablefilter.ValidateEndpoint(g, "zzz", table, "A"), cablefilter.ErrUnknownNode)
}

func TestCableTable_Register(t *testing.T) {
	table := cablefilter.DefaultCableTable().Register("D", core.SystemA, core.SystemB)
	allowed, err := table.AllowedSystems("D")
	require.NoError(t, err)
	assert.True(t, allowed.Contains(core.SystemA))
	assert.True(t, allowed.Contains(core.SystemB))
}
