// File: compose.go
// Role: Compose — the leg-chaining algorithm shared by every orchestrator
// entry point (direct, ppo, multi_ppo, forward_path all reduce to a call
// here with a different waypoint list and Options.ForwardPath).
package composer

import (
	"context"

	"github.com/cadimo/pathcore/astar"
)

// Compose resolves a path through origin, ppos (in order), and
// destination, by running astar.Search once per leg over g with the given
// base forbidden set. ppos may be empty, in which case Compose behaves
// identically to a direct two-point search.
//
// Fails with *LegFailedError if any leg's search returns an error, or
// *ForwardPathInfeasibleError if opts.ForwardPath eliminates every route
// on some leg i>=2.
func Compose(ctx context.Context, g astarGraph, origin string, ppos []string, destination string, forbidden map[uint64]struct{}, opts Options) (*ComposeResult, error) {
	waypoints := newWaypointSet(origin, ppos, destination)

	result := &ComposeResult{}
	var lastTramoOfPrevLeg uint64
	var havePrevTramo bool

	for i := 0; i < waypoints.legCount(); i++ {
		from := waypoints.keys[i]
		to := waypoints.keys[i+1]
		legIndex := i + 1

		legForbidden := forbidden
		forwardPathActive := opts.ForwardPath && legIndex >= 2 && havePrevTramo
		if forwardPathActive {
			legForbidden = withExtra(forbidden, lastTramoOfPrevLeg)
		}

		searchResult, err := astar.Search(ctx, g, from, to, legForbidden)
		if err != nil {
			if forwardPathActive {
				// Distinguish "this leg is unreachable even without the
				// forward-path delta" from "the delta itself is what broke it"
				// by re-running without the extra forbid.
				if _, plainErr := astar.Search(ctx, g, from, to, forbidden); plainErr == nil {
					return nil, &ForwardPathInfeasibleError{LegIndex: legIndex, BlockingTramoID: lastTramoOfPrevLeg}
				}
				// otherwise the leg is unreachable regardless; report it as such below.
			}
			return nil, &LegFailedError{LegIndex: legIndex, Cause: err}
		}

		leg := LegResult{
			From:          from,
			To:            to,
			Path:          searchResult.Path,
			TramoIDs:      searchResult.TramoIDs,
			Distance:      searchResult.Distance,
			NodesExplored: searchResult.NodesExplored,
		}
		result.Legs = append(result.Legs, leg)
		result.Distance += leg.Distance
		result.NodesExplored += leg.NodesExplored
		result.TramoIDs = append(result.TramoIDs, leg.TramoIDs...)

		if i == 0 {
			result.Path = append(result.Path, leg.Path...)
		} else {
			// leg.Path[0] repeats the previous leg's final point (the join
			// node); drop it so the stitched path has no duplicate.
			result.Path = append(result.Path, leg.Path[1:]...)
		}

		if len(leg.TramoIDs) > 0 {
			lastTramoOfPrevLeg = leg.TramoIDs[len(leg.TramoIDs)-1]
			havePrevTramo = true
		} else {
			havePrevTramo = false
		}
	}

	return result, nil
}

func withExtra(base map[uint64]struct{}, extra uint64) map[uint64]struct{} {
	out := make(map[uint64]struct{}, len(base)+1)
	for k := range base {
		out[k] = struct{}{}
	}
	out[extra] = struct{}{}

	return out
}
