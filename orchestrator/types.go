package orchestrator

import (
	"go.uber.org/zap"

	"github.com/cadimo/pathcore/cablefilter"
	"github.com/cadimo/pathcore/core"
)

// Orchestrator wires a loaded graph and cable configuration into the five
// public entry points. It holds no per-request state; a single value is
// safe to reuse and share across concurrent requests, since every
// downstream component it calls treats the graph as read-only and confines
// mutation to a per-request overlay.
type Orchestrator struct {
	graph *core.Graph
	table cablefilter.CableTable
	log   *zap.SugaredLogger
}

// Option configures an Orchestrator at construction time.
type Option func(*Orchestrator)

// WithCableTable overrides the default A/B/C cable table.
func WithCableTable(table cablefilter.CableTable) Option {
	return func(o *Orchestrator) { o.table = table }
}

// WithLogger attaches a zap logger; calls are logged at Info level with
// structured fields. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) { o.log = logger.Sugar() }
}

// New builds an Orchestrator over graph.
func New(graph *core.Graph, opts ...Option) *Orchestrator {
	o := &Orchestrator{graph: graph, table: cablefilter.DefaultCableTable(), log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Request bundles the per-call parameters shared by every entry point.
type Request struct {
	Cable       cablefilter.CableType
	Forbidden   map[uint64]struct{}
	Tolerance   float64
	ForwardPath bool
}
