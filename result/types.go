package result

import (
	"github.com/cadimo/pathcore/core"
)

// LegInfo summarizes one leg of a composition: its endpoints, point count,
// nodes explored, distance, and the tramo IDs it traversed (a read-only
// trace that lets a caller re-verify forbidden-set compliance after the
// fact without re-running the search).
type LegInfo struct {
	From          string
	To            string
	PointsCount   int
	NodesExplored int
	Distance      float64
	TramoIDs      []uint64
}

// Meta carries request-level context alongside a PathResult, useful for
// logging and for a caller auditing which systems a cable type permitted.
type Meta struct {
	RequestID      string
	Cable          string
	AllowedSystems []core.SystemTag
	ForbiddenCount int
}

// PathResult is the orchestrator's public output: the stitched path,
// aggregate distance and exploration count, the per-leg breakdown, and
// request metadata.
type PathResult struct {
	Points        []string
	TotalDistance float64
	NodesExplored int
	Legs          []LegInfo
	Meta          Meta
}
