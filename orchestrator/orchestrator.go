// File: orchestrator.go
// Role: the shared resolve-validate-compose pipeline behind every public
// entry point, plus Direct/PPO/MultiPPO/ForwardPath themselves.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cadimo/pathcore/cablefilter"
	"github.com/cadimo/pathcore/composer"
	"github.com/cadimo/pathcore/connector"
	"github.com/cadimo/pathcore/core"
	"github.com/cadimo/pathcore/resolver"
	"github.com/cadimo/pathcore/result"
)

// defaultTolerance is used when a Request leaves Tolerance at its zero
// value.
const defaultTolerance = 0.5

// Direct computes the shortest route from origin to destination.
func (o *Orchestrator) Direct(ctx context.Context, req Request, origin, destination core.Point) (*result.PathResult, error) {
	return o.run(ctx, req, origin, nil, destination)
}

// PPO computes the shortest route from origin to destination visiting ppo
// in between.
func (o *Orchestrator) PPO(ctx context.Context, req Request, origin, ppo, destination core.Point) (*result.PathResult, error) {
	return o.run(ctx, req, origin, []core.Point{ppo}, destination)
}

// MultiPPO computes the shortest route visiting every point in ppos, in
// order, between origin and destination. An empty ppos behaves identically
// to Direct.
func (o *Orchestrator) MultiPPO(ctx context.Context, req Request, origin core.Point, ppos []core.Point, destination core.Point) (*result.PathResult, error) {
	return o.run(ctx, req, origin, ppos, destination)
}

// ForwardPath is MultiPPO with the anti-backtracking join-edge rule active.
func (o *Orchestrator) ForwardPath(ctx context.Context, req Request, origin core.Point, ppos []core.Point, destination core.Point) (*result.PathResult, error) {
	req.ForwardPath = true
	return o.run(ctx, req, origin, ppos, destination)
}

func (o *Orchestrator) run(ctx context.Context, req Request, origin core.Point, ppos []core.Point, destination core.Point) (*result.PathResult, error) {
	requestID := uuid.NewString()
	tol := req.Tolerance
	if tol <= 0 {
		tol = defaultTolerance
	}

	adj, err := cablefilter.FilteredAdjacency(o.graph, o.table, req.Cable)
	if err != nil {
		o.log.Infow("orchestrator: request failed", "request_id", requestID, "stage", "filter", "err", err)
		return nil, err
	}

	overlay := resolver.NewOverlay()
	originKey, ppoKeys, destKey, err := o.resolveWaypoints(overlay, adj, origin, ppos, destination, tol)
	if err != nil {
		o.log.Infow("orchestrator: request failed", "request_id", requestID, "stage", "resolve", "err", err)
		return nil, err
	}

	if err := o.validateEndpoints(req.Cable, originKey, ppoKeys, destKey); err != nil {
		o.log.Infow("orchestrator: request failed", "request_id", requestID, "stage", "validate", "err", err)
		return nil, err
	}

	view := resolver.NewView(o.graph, adj, overlay)
	composeResult, err := composer.Compose(ctx, view, originKey, ppoKeys, destKey, req.Forbidden, composer.Options{ForwardPath: req.ForwardPath, Tolerance: tol})
	if err != nil {
		o.log.Infow("orchestrator: request failed", "request_id", requestID, "stage", "compose", "err", err)
		return nil, err
	}

	allowed, _ := o.table.AllowedSystems(req.Cable)
	out := buildPathResult(composeResult, requestID, req, allowed)

	o.log.Infow("orchestrator: path computed",
		"request_id", requestID,
		"distance", out.TotalDistance,
		"nodes_explored", out.NodesExplored,
		"legs", len(out.Legs),
	)

	return out, nil
}

// resolveWaypoints resolves origin, every ppo, and destination against a
// single shared overlay so a split made while resolving an earlier
// waypoint is visible to a later one. A point too far from any edge to
// resolve within tol falls back to the external connector: it is
// spliced into the overlay as a SystemExternal node reachable only via its
// Manhattan approach routes, and that node's key is used in its place.
func (o *Orchestrator) resolveWaypoints(overlay *resolver.Overlay, adj cablefilter.Adjacency, origin core.Point, ppos []core.Point, destination core.Point, tol float64) (originKey string, ppoKeys []string, destKey string, err error) {
	nextTramoID := o.nextTramoID()

	resolveOne := func(p core.Point) (string, error) {
		key, rerr := resolver.Resolve(o.graph, adj, overlay, p, tol)
		if rerr == nil {
			return key, nil
		}

		var notOnGraph *resolver.PointNotOnGraphError
		if !errors.As(rerr, &notOnGraph) {
			return "", rerr
		}

		edges, coords := resolver.EffectiveEdgeSet(o.graph, adj, overlay)
		res, cerr := connector.Connect(p, edges, coords, nextTramoID, connector.DefaultK)
		if cerr != nil {
			return "", rerr
		}

		overlay.MergeExternal(res.ExtraNodes, res.ExtraEdges, res.HiddenTramoID)
		nextTramoID = maxTramoID(res.ExtraEdges) + 1
		return res.ExternalNode.Key, nil
	}

	originKey, err = resolveOne(origin)
	if err != nil {
		return "", nil, "", err
	}

	ppoKeys = make([]string, 0, len(ppos))
	for _, p := range ppos {
		key, rerr := resolveOne(p)
		if rerr != nil {
			return "", nil, "", rerr
		}
		ppoKeys = append(ppoKeys, key)
	}

	destKey, err = resolveOne(destination)
	if err != nil {
		return "", nil, "", err
	}

	return originKey, ppoKeys, destKey, nil
}

// nextTramoID returns the first tramo ID safe to assign to a connector
// approach edge: one past the highest ID already in use by the base graph.
func (o *Orchestrator) nextTramoID() uint64 {
	return maxTramoID(o.graph.Edges()) + 1
}

func maxTramoID(edges []core.Edge) uint64 {
	var highest uint64
	for _, e := range edges {
		if e.TramoID > highest {
			highest = e.TramoID
		}
	}
	return highest
}

func (o *Orchestrator) validateEndpoints(cable cablefilter.CableType, originKey string, ppoKeys []string, destKey string) error {
	keys := append([]string{originKey}, ppoKeys...)
	keys = append(keys, destKey)
	for _, key := range keys {
		if !o.graph.HasNode(key) {
			continue // a resolver-created virtual node; SystemExternal-equivalent, always legal
		}
		if err := cablefilter.ValidateEndpoint(o.graph, key, o.table, cable); err != nil {
			return fmt.Errorf("orchestrator: %w", err)
		}
	}
	return nil
}

func buildPathResult(c *composer.ComposeResult, requestID string, req Request, allowed cablefilter.SystemSet) *result.PathResult {
	legs := make([]result.LegInfo, 0, len(c.Legs))
	for _, leg := range c.Legs {
		legs = append(legs, result.LegInfo{
			From:          leg.From,
			To:            leg.To,
			PointsCount:   len(leg.Path),
			NodesExplored: leg.NodesExplored,
			Distance:      leg.Distance,
			TramoIDs:      leg.TramoIDs,
		})
	}

	return &result.PathResult{
		Points:        c.Path,
		TotalDistance: c.Distance,
		NodesExplored: c.NodesExplored,
		Legs:          legs,
		Meta: result.Meta{
			RequestID:      requestID,
			Cable:          string(req.Cable),
			AllowedSystems: allowed.Sorted(),
			ForbiddenCount: len(req.Forbidden),
		},
	}
}
