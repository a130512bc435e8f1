package ioformat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadimo/pathcore/core"
	"github.com/cadimo/pathcore/ioformat"
	"github.com/cadimo/pathcore/result"
)

const sampleGraph = `{
	"nodes": {
		"(0, 0, 0)": {"sys": "A"},
		"(10, 0, 0)": {"sys": "A"}
	},
	"edges": [
		{"from": "(0, 0, 0)", "to": "(10, 0, 0)", "sys": "A"}
	]
}`

func TestDecodeTaggedGraph(t *testing.T) {
	nodes, edges, err := ioformat.DecodeTaggedGraph([]byte(sampleGraph))
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	require.Len(t, edges, 1)

	g, err := core.LoadTaggedGraph(nodes, edges, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
}

func TestDecodeTramoMap_CoverageMismatch(t *testing.T) {
	_, err := ioformat.DecodeTramoMap([]byte(`{"(0, 0, 0)-(10, 0, 0)": 1}`), 2)
	assert.ErrorIs(t, err, ioformat.ErrTramoMapCoverage)
}

func TestDecodeForbiddenSet(t *testing.T) {
	set, err := ioformat.DecodeForbiddenSet([]byte(`[1, 2, 3]`))
	require.NoError(t, err)
	assert.Len(t, set, 3)
	_, ok := set[2]
	assert.True(t, ok)
}

func TestDecodeLegacyAdjacency_MixedNeighborForms(t *testing.T) {
	adj, err := ioformat.DecodeLegacyAdjacency([]byte(`{
		"(0, 0, 0)": ["(10, 0, 0)", [20, 0, 0]]
	}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"(10, 0, 0)", "(20, 0, 0)"}, adj["(0, 0, 0)"])
}

func TestEncodePathResult(t *testing.T) {
	r := result.PathResult{
		Points:        []string{"a", "b"},
		TotalDistance: 10,
		NodesExplored: 2,
		Legs: []result.LegInfo{
			{From: "a", To: "b", PointsCount: 2, NodesExplored: 2, Distance: 10, TramoIDs: []uint64{1}},
		},
		Meta: result.Meta{RequestID: "req-1", Cable: "A", AllowedSystems: []core.SystemTag{core.SystemA}, ForbiddenCount: 0},
	}

	data, err := ioformat.EncodePathResult(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"request_id":"req-1"`)
	assert.Contains(t, string(data), `"tramo_ids":[1]`)
}
