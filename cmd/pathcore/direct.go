package main

import (
	"github.com/spf13/cobra"
)

func newDirectCmd() *cobra.Command {
	var common commonFlags
	var origin, destination string

	cmd := &cobra.Command{
		Use:   "direct",
		Short: "Shortest route from origin to destination",
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

			pr, err := o.Direct(cmd.Context(), req, originPt, destPt)
			if err != nil {
				return err
			}
			return emit(cmd, pr)
		},
	}

	common.register(cmd.Flags())
	cmd.Flags().StringVar(&origin, "origin", "", "origin as \"x,y,z\" (required)")
	cmd.Flags().StringVar(&destination, "destination", "", "destination as \"x,y,z\" (required)")

	return cmd
}
