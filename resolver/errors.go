package resolver

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/spatial"
)

// PointNotOnGraphError reports that a query point could not be resolved
// onto the graph within tolerance. It carries the point itself, the
// nearest distance found, and that distance's quality bucket so callers
// can build an actionable diagnostic.
type PointNotOnGraphError struct {
	Point           r3.Vec
	NearestDistance float64
	Quality         spatial.MatchQuality
}

func (e *PointNotOnGraphError) Error() string {
	return fmt.Sprintf("resolver: point %v not on graph (nearest distance %.6f, quality %s)",
		e.Point, e.NearestDistance, e.Quality)
}

// Unwrap lets errors.Is(err, ErrPointNotOnGraph) succeed.
func (e *PointNotOnGraphError) Unwrap() error { return ErrPointNotOnGraph }
