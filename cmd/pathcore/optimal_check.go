package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOptimalCheckCmd() *cobra.Command {
	var common commonFlags
	var origin, ppo1, ppo2, destination string

	cmd := &cobra.Command{
		Use:   "optimal_check",
		Short: "Run both 2-PPO orderings and report the cheaper one (or a tie)",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, req, err := common.load(cmd)
			if err != nil {
				return err
			}
			originPt, err := parseFloat3("origin", origin)
			if err != nil {
				return err
			}
			ppo1Pt, err := parseFloat3("ppo1", ppo1)
			if err != nil {
				return err
			}
			ppo2Pt, err := parseFloat3("ppo2", ppo2)
			if err != nil {
				return err
			}
			destPt, err := parseFloat3("destination", destination)
			if err != nil {
				return err
			}

			check, err := o.OptimalCheck(cmd.Context(), req, originPt, ppo1Pt, ppo2Pt, destPt)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "order (ppo1, ppo2): distance=%.6f err=%v\n", check.FirstDistance, check.FirstErr)
			fmt.Fprintf(cmd.OutOrStdout(), "order (ppo2, ppo1): distance=%.6f err=%v\n", check.SecondDistance, check.SecondErr)
			if check.Tied {
				fmt.Fprintln(cmd.OutOrStdout(), "result: tied within epsilon")
			}
			if check.Winner != nil {
				return emit(cmd, check.Winner)
			}
			return nil
		},
	}

	common.register(cmd.Flags())
	cmd.Flags().StringVar(&origin, "origin", "", "origin as \"x,y,z\" (required)")
	cmd.Flags().StringVar(&ppo1, "ppo1", "", "first PPO as \"x,y,z\" (required)")
	cmd.Flags().StringVar(&ppo2, "ppo2", "", "second PPO as \"x,y,z\" (required)")
	cmd.Flags().StringVar(&destination, "destination", "", "destination as \"x,y,z\" (required)")

	return cmd
}
