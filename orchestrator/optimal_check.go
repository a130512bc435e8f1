// File: optimal_check.go
// Role: OptimalCheck — the fifth public entry point, running both
// 2-PPO orderings and reporting the cheaper one (or a tie).
package orchestrator

import (
	"context"

	"github.com/google/uuid"

	"github.com/cadimo/pathcore/cablefilter"
	"github.com/cadimo/pathcore/composer"
	"github.com/cadimo/pathcore/core"
	"github.com/cadimo/pathcore/resolver"
	"github.com/cadimo/pathcore/result"
)

// OptimalCheckResult reports both 2-PPO orderings. Winner is nil only if
// both orderings failed; Tied reports the two orderings were within
// epsilon of each other rather than one being picked arbitrarily.
type OptimalCheckResult struct {
	Winner         *result.PathResult
	FirstDistance  float64
	FirstErr       error
	SecondDistance float64
	SecondErr      error
	Tied           bool
}

func (o *Orchestrator) OptimalCheck(ctx context.Context, req Request, origin, ppo1, ppo2, destination core.Point) (*OptimalCheckResult, error) {
	requestID := uuid.NewString()
	tol := req.Tolerance
	if tol <= 0 {
		tol = defaultTolerance
	}

	adj, err := cablefilter.FilteredAdjacency(o.graph, o.table, req.Cable)
	if err != nil {
		return nil, err
	}

	overlay := resolver.NewOverlay()
	originKey, ppoKeys, destKey, err := o.resolveWaypoints(overlay, adj, origin, []core.Point{ppo1, ppo2}, destination, tol)
	if err != nil {
		return nil, err
	}
	ppo1Key, ppo2Key := ppoKeys[0], ppoKeys[1]

	if err := o.validateEndpoints(req.Cable, originKey, ppoKeys, destKey); err != nil {
		return nil, err
	}

	view := resolver.NewView(o.graph, adj, overlay)
	check := composer.OptimalCheck(ctx, view, originKey, ppo1Key, ppo2Key, destKey, req.Forbidden, composer.Options{ForwardPath: req.ForwardPath, Tolerance: tol})

	allowed, _ := o.table.AllowedSystems(req.Cable)
	out := &OptimalCheckResult{Tied: check.Tied, FirstErr: check.First.Err, SecondErr: check.Second.Err}
	if check.First.Result != nil {
		out.FirstDistance = check.First.Result.Distance
	}
	if check.Second.Result != nil {
		out.SecondDistance = check.Second.Result.Distance
	}

	switch check.Winner {
	case 0:
		if check.First.Result != nil {
			pr := buildPathResult(check.First.Result, requestID, req, allowed)
			out.Winner = pr
		}
	case 1:
		if check.Second.Result != nil {
			pr := buildPathResult(check.Second.Result, requestID, req, allowed)
			out.Winner = pr
		}
	}

	o.log.Infow("orchestrator: optimal check computed",
		"request_id", requestID,
		"tied", out.Tied,
		"first_distance", out.FirstDistance,
		"second_distance", out.SecondDistance,
	)

	return out, nil
}
