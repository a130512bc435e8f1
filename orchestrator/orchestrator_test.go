package orchestrator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/cablefilter"
	"github.com/cadimo/pathcore/core"
	"github.com/cadimo/pathcore/orchestrator"
)

func buildGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.LoadTaggedGraph(
		[]core.NodeSpec{
			{Key: "(0, 0, 0)", Sys: core.SystemA, Vec: r3.Vec{X: 0, Y: 0, Z: 0}},
			{Key: "(10, 0, 0)", Sys: core.SystemA, Vec: r3.Vec{X: 10, Y: 0, Z: 0}},
			{Key: "(20, 0, 0)", Sys: core.SystemA, Vec: r3.Vec{X: 20, Y: 0, Z: 0}},
			{Key: "(20, 10, 0)", Sys: core.SystemB, Vec: r3.Vec{X: 20, Y: 10, Z: 0}},
		},
		[]core.EdgeSpec{
			{From: "(0, 0, 0)", To: "(10, 0, 0)", Sys: core.SystemA},
			{From: "(10, 0, 0)", To: "(20, 0, 0)", Sys: core.SystemA},
			{From: "(20, 0, 0)", To: "(20, 10, 0)", Sys: core.SystemB},
		},
		nil,
	)
	require.NoError(t, err)
	return g
}

func TestOrchestrator_Direct(t *testing.T) {
	o := orchestrator.New(buildGraph(t))
	res, err := o.Direct(context.Background(), orchestrator.Request{Cable: "A"},
		core.Point{Key: "(0, 0, 0)", Vec: r3.Vec{X: 0, Y: 0, Z: 0}},
		core.Point{Key: "(20, 0, 0)", Vec: r3.Vec{X: 20, Y: 0, Z: 0}},
	)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, res.TotalDistance, 1e-9)
	assert.NotEmpty(t, res.Meta.RequestID)
}

func TestOrchestrator_Direct_CrossSystemRejected(t *testing.T) {
	o := orchestrator.New(buildGraph(t))
	_, err := o.Direct(context.Background(), orchestrator.Request{Cable: "A"},
		core.Point{Key: "(0, 0, 0)", Vec: r3.Vec{X: 0, Y: 0, Z: 0}},
		core.Point{Key: "(20, 10, 0)", Vec: r3.Vec{X: 20, Y: 10, Z: 0}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, cablefilter.ErrEndpointInForbiddenSystem)
}

func TestOrchestrator_PPO(t *testing.T) {
	o := orchestrator.New(buildGraph(t))
	res, err := o.PPO(context.Background(), orchestrator.Request{Cable: "A"},
		core.Point{Key: "(0, 0, 0)", Vec: r3.Vec{X: 0, Y: 0, Z: 0}},
		core.Point{Key: "(10, 0, 0)", Vec: r3.Vec{X: 10, Y: 0, Z: 0}},
		core.Point{Key: "(20, 0, 0)", Vec: r3.Vec{X: 20, Y: 0, Z: 0}},
	)
	require.NoError(t, err)
	assert.Contains(t, res.Points, "(10, 0, 0)")
	assert.Len(t, res.Legs, 2)
}

func TestOrchestrator_MultiPPO_EmptyEqualsDirect(t *testing.T) {
	o := orchestrator.New(buildGraph(t))
	direct, err := o.Direct(context.Background(), orchestrator.Request{Cable: "A"},
		core.Point{Key: "(0, 0, 0)", Vec: r3.Vec{X: 0, Y: 0, Z: 0}},
		core.Point{Key: "(20, 0, 0)", Vec: r3.Vec{X: 20, Y: 0, Z: 0}},
	)
	require.NoError(t, err)

	multi, err := o.MultiPPO(context.Background(), orchestrator.Request{Cable: "A"},
		core.Point{Key: "(0, 0, 0)", Vec: r3.Vec{X: 0, Y: 0, Z: 0}},
		nil,
		core.Point{Key: "(20, 0, 0)", Vec: r3.Vec{X: 20, Y: 0, Z: 0}},
	)
	require.NoError(t, err)
	assert.InDelta(t, direct.TotalDistance, multi.TotalDistance, 1e-9)
}

func TestOrchestrator_Direct_AttachesExternalPointBeyondTolerance(t *testing.T) {
	o := orchestrator.New(buildGraph(t))
	far := core.Point{Key: "rig-1", Vec: r3.Vec{X: 5, Y: 9, Z: 0}} // 9 units off the (0,0,0)-(10,0,0) edge
	res, err := o.Direct(context.Background(), orchestrator.Request{Cable: "A", Tolerance: 0.5},
		core.Point{Key: "(0, 0, 0)", Vec: r3.Vec{X: 0, Y: 0, Z: 0}},
		far,
	)
	require.NoError(t, err)
	assert.Contains(t, res.Points, "rig-1")
	assert.Greater(t, res.TotalDistance, 0.0)
}

func TestOrchestrator_OptimalCheck(t *testing.T) {
	o := orchestrator.New(buildGraph(t))
	res, err := o.OptimalCheck(context.Background(), orchestrator.Request{Cable: "C"},
		core.Point{Key: "(0, 0, 0)", Vec: r3.Vec{X: 0, Y: 0, Z: 0}},
		core.Point{Key: "(10, 0, 0)", Vec: r3.Vec{X: 10, Y: 0, Z: 0}},
		core.Point{Key: "(20, 0, 0)", Vec: r3.Vec{X: 20, Y: 0, Z: 0}},
		core.Point{Key: "(20, 10, 0)", Vec: r3.Vec{X: 20, Y: 10, Z: 0}},
	)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
}
