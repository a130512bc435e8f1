package main

import (
	"github.com/spf13/cobra"
)

func newForwardPathCmd() *cobra.Command {
	var common commonFlags
	var origin, destination string
	var ppos []string

	cmd := &cobra.Command{
		Use:   "forward_path",
		Short: "multi_ppo with the anti-backtracking join-edge rule active",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, req, err := common.load(cmd)
			if err != nil {
				return err
			}
			req.ForwardPath = true

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

			pr, err := o.ForwardPath(cmd.Context(), req, originPt, ppoPts, destPt)
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
