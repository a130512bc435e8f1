package composer

import (
	"github.com/cadimo/pathcore/astar"
)

// Options tunes a Compose call.
type Options struct {
	// ForwardPath activates the anti-backtracking rule: for leg i>=2, the
	// tramo ID of the last edge of leg i-1 is additionally forbidden for
	// leg i only.
	ForwardPath bool
	// Tolerance records the resolver tolerance the caller resolved the
	// waypoints with. Compose itself does not read it.
	Tolerance float64
}

// LegResult is one leg's raw search output, before join-point deduplication.
type LegResult struct {
	From          string
	To            string
	Path          []string
	TramoIDs      []uint64
	Distance      float64
	NodesExplored int
}

// ComposeResult is the stitched output of every leg in a composition.
type ComposeResult struct {
	Path          []string // join points de-duplicated
	TramoIDs      []uint64
	Distance      float64
	NodesExplored int
	Legs          []LegResult
}

// waypointSet is the resolved node-key sequence a composition walks
// through, always at least two entries (origin, destination).
type waypointSet struct {
	keys []string
}

func newWaypointSet(origin string, ppos []string, destination string) waypointSet {
	keys := make([]string, 0, len(ppos)+2)
	keys = append(keys, origin)
	keys = append(keys, ppos...)
	keys = append(keys, destination)

	return waypointSet{keys: keys}
}

func (w waypointSet) legCount() int { return len(w.keys) - 1 }

// astarGraph is the narrow surface Compose needs: anything satisfying
// astar.Graph. Kept as an alias so composer's own exported signatures read
// in domain terms without importing package resolver, whose View is the
// production implementation wired in by the orchestrator.
type astarGraph = astar.Graph
