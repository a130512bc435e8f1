package composer

import (
	"errors"
	"fmt"
)

// ErrLegFailed is the sentinel wrapped by LegFailedError.
var ErrLegFailed = errors.New("composer: leg failed")

// ErrForwardPathInfeasible is the sentinel wrapped by ForwardPathInfeasibleError.
var ErrForwardPathInfeasible = errors.New("composer: forward-path rule leaves no route")

// LegFailedError reports that leg LegIndex (1-based) failed, bubbling the
// underlying cause verbatim.
type LegFailedError struct {
	LegIndex int
	Cause    error
}

func (e *LegFailedError) Error() string {
	return fmt.Sprintf("composer: leg %d failed: %v", e.LegIndex, e.Cause)
}

func (e *LegFailedError) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, ErrLegFailed) succeed without discarding the
// wrapped cause, which callers reach via errors.As or Unwrap.
func (e *LegFailedError) Is(target error) bool { return target == ErrLegFailed }

// ForwardPathInfeasibleError reports that adding the join-edge forbid for
// leg LegIndex eliminated every route; BlockingTramoID names the edge that
// was added to the forbidden set.
type ForwardPathInfeasibleError struct {
	LegIndex        int
	BlockingTramoID uint64
}

func (e *ForwardPathInfeasibleError) Error() string {
	return fmt.Sprintf("composer: forward-path rule on leg %d forbids tramo %d, leaving no route",
		e.LegIndex, e.BlockingTramoID)
}

func (e *ForwardPathInfeasibleError) Is(target error) bool { return target == ErrForwardPathInfeasible }
