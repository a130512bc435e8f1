package main

import (
	"github.com/spf13/cobra"

	"github.com/cadimo/pathcore/core"
)

func newMultiPPOCmd() *cobra.Command {
	var common commonFlags
	var origin, destination string
	var ppos []string

	cmd := &cobra.Command{
		Use:   "multi_ppo",
		Short: "Shortest route visiting an ordered sequence of mandatory waypoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, req, err := common.load(cmd)
			if err != nil {
				return err
			}
			originPt, err := parseFloat3("origin", origin)
			if err != nil {
				return err
			}
			destPt, err := parseFloat3("destination", destination)
			if err != nil {
				return err
			}
			ppoPts, err := parsePPOList(ppos)
			if err != nil {
				return err
			}

			pr, err := o.MultiPPO(cmd.Context(), req, originPt, ppoPts, destPt)
			if err != nil {
				return err
			}
			return emit(cmd, pr)
		},
	}

	common.register(cmd.Flags())
	cmd.Flags().StringVar(&origin, "origin", "", "origin as \"x,y,z\" (required)")
	cmd.Flags().StringVar(&destination, "destination", "", "destination as \"x,y,z\" (required)")
	cmd.Flags().StringArrayVar(&ppos, "ppo", nil, "mandatory waypoint as \"x,y,z\" (repeatable, order matters)")

	return cmd
}

func parsePPOList(raw []string) ([]core.Point, error) {
	out := make([]core.Point, 0, len(raw))
	for _, r := range raw {
		p, err := parseFloat3("ppo", r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
