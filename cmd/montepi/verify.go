package main

import (
	"github.com/aretw0/montepi/internal/cli"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [dir]",
		Short: "Check existing data files",
		Long:  `Re-reads inside.dat and outside.dat, checks that every point is on the right side of the unit circle and recomputes the estimate.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			_, err := cli.Verify(dir, cli.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()})
			return err
		},
	}
}
