package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cadimo/pathcore/astar"
	"github.com/cadimo/pathcore/cablefilter"
	"github.com/cadimo/pathcore/composer"
	"github.com/cadimo/pathcore/resolver"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pathcore",
		Short:        "Constrained 3D path engine CLI",
		SilenceUsage: true,
	}

	root.AddCommand(
		newDirectCmd(),
		newPPOCmd(),
		newMultiPPOCmd(),
		newForwardPathCmd(),
		newOptimalCheckCmd(),
	)

	return root
}

// exitCodeFor maps an error kind to a process exit code. 0 is reserved for
// success and is returned only for a nil error.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.As(err, new(*resolver.PointNotOnGraphError)):
		return 2
	case errors.Is(err, cablefilter.ErrUnknownCable), errors.Is(err, cablefilter.ErrUnknownNode), errors.Is(err, cablefilter.ErrEndpointInForbiddenSystem):
		return 3
	case errors.Is(err, astar.ErrNoPath), errors.As(err, new(*composer.LegFailedError)):
		return 4
	case errors.As(err, new(*composer.ForwardPathInfeasibleError)):
		return 5
	case errors.Is(err, astar.ErrCancelled):
		return 6
	default:
		return 1
	}
}
