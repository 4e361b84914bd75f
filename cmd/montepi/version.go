package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/montepi"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of montepi",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "montepi version %s\n", strings.TrimSpace(montepi.Version))
		},
	}
}
