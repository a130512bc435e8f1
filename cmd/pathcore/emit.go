package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadimo/pathcore/ioformat"
	"github.com/cadimo/pathcore/result"
)

func emit(cmd *cobra.Command, pr *result.PathResult) error {
	data, err := ioformat.EncodePathResult(*pr)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
