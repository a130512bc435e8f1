// File: optimal_check.go
// Role: OptimalCheck — run a 2-PPO composition both orderings and report
// the cheaper one, or a tie within epsilon.
package composer

import (
	"context"
	"math"
)

// tieEpsilon is the distance tolerance within which two orderings are
// reported as tied rather than one arbitrarily winning.
const tieEpsilon = 1e-6

// OrderedResult is one ordering's outcome: either a ComposeResult or the
// error that ordering failed with.
type OrderedResult struct {
	Order  [2]string // the two PPO keys in the order tried
	Result *ComposeResult
	Err    error
}

// OptimalCheckResult reports both 2-PPO orderings.
type OptimalCheckResult struct {
	First  OrderedResult
	Second OrderedResult
	// Winner is 0 for First, 1 for Second, or -1 if both orderings failed.
	Winner int
	Tied   bool
}

// OptimalCheck runs Compose for both (ppo1, ppo2) and (ppo2, ppo1) and
// reports which is cheaper. If one ordering fails, the other wins
// unconditionally. If both fail, Winner is -1. Two successful orderings
// within tieEpsilon of each other are reported as Tied, with Winner left
// at whichever compared lower (or First on an exact tie).
func OptimalCheck(ctx context.Context, g astarGraph, origin, ppo1, ppo2, destination string, forbidden map[uint64]struct{}, opts Options) *OptimalCheckResult {
	firstRes, firstErr := Compose(ctx, g, origin, []string{ppo1, ppo2}, destination, forbidden, opts)
	secondRes, secondErr := Compose(ctx, g, origin, []string{ppo2, ppo1}, destination, forbidden, opts)

	out := &OptimalCheckResult{
		First:  OrderedResult{Order: [2]string{ppo1, ppo2}, Result: firstRes, Err: firstErr},
		Second: OrderedResult{Order: [2]string{ppo2, ppo1}, Result: secondRes, Err: secondErr},
	}

	switch {
	case firstErr != nil && secondErr != nil:
		out.Winner = -1
	case firstErr != nil:
		out.Winner = 1
	case secondErr != nil:
		out.Winner = 0
	default:
		if math.Abs(firstRes.Distance-secondRes.Distance) <= tieEpsilon {
			out.Tied = true
		}
		if firstRes.Distance <= secondRes.Distance {
			out.Winner = 0
		} else {
			out.Winner = 1
		}
	}

	return out
}
