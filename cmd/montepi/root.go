package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "montepi",
		Short: "montepi estimates π by Monte Carlo sampling",
		Long: `montepi draws random points in the square [-1,1]x[-1,1], counts those inside the unit circle
and reports the estimate of π with a 95% confidence interval.
Accepted and rejected points are written to inside.dat and outside.dat for plotting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML config file (default: ./montepi.yaml if present)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	runCmd := newRunCmd()
	rootCmd.AddCommand(runCmd, newVerifyCmd(), newVersionCmd())

	// 'run' is the default when no command is provided.
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE

	return rootCmd
}

// Execute builds the command tree and runs it against os.Args.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
