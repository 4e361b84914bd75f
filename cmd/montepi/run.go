package main

import (
	"github.com/aretw0/montepi/internal/cli"
	"github.com/aretw0/montepi/internal/config"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the estimation",
		Long:  `Draws the configured number of samples (1000000 by default), prints the estimate and writes inside.dat and outside.dat.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			streams := cli.DefaultStreams()
			streams.Out = cmd.OutOrStdout()
			streams.Err = cmd.ErrOrStderr()
			return cli.Run(cfg, streams)
		},
	}

	runCmd.Flags().IntP("samples", "n", config.DefaultSamples, "Number of points to draw")
	runCmd.Flags().Uint64("seed", 0, "Seed for the random source (default: random)")
	runCmd.Flags().StringP("out", "o", ".", "Directory for inside.dat and outside.dat")
	runCmd.Flags().String("metrics-file", "", "Write run metrics in Prometheus text format to this file")
	runCmd.Flags().Bool("no-progress", false, "Disable the progress bar")

	return runCmd
}

// loadConfig reads the config file and applies the flags the user explicitly set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("samples") {
		cfg.Samples, _ = flags.GetInt("samples")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		cfg = cfg.WithSeed(seed)
	}
	if flags.Changed("out") {
		cfg.OutputDir, _ = flags.GetString("out")
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}
	if flags.Changed("no-progress") {
		noProgress, _ := flags.GetBool("no-progress")
		cfg.Progress = !noProgress
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg, cfg.Validate()
}
