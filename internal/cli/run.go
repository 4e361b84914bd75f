package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/montepi"
	"github.com/aretw0/montepi/internal/config"
	"github.com/aretw0/montepi/internal/logging"
	"github.com/aretw0/montepi/internal/metrics"
	"github.com/aretw0/montepi/internal/presentation/tui"
	"github.com/aretw0/montepi/pkg/source"
)

// Streams bundles the standard streams used by the commands.
type Streams struct {
	Out io.Writer
	Err io.Writer

	// Interactive enables the progress bar. It is normally true only when
	// Err is a terminal.
	Interactive bool
}

// DefaultStreams returns the process streams.
func DefaultStreams() Streams {
	return Streams{
		Out:         os.Stdout,
		Err:         os.Stderr,
		Interactive: tui.IsTerminal(os.Stderr),
	}
}

// Run executes one estimation with cfg and prints the report to s.Out.
func Run(cfg config.Config, s Streams) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.NewWithWriter(s.Err, level)

	seed := source.RandomSeed()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	opts := []montepi.Option{
		montepi.WithSamples(cfg.Samples),
		montepi.WithSeed(seed),
		montepi.WithOutputDir(cfg.OutputDir),
		montepi.WithLogger(logger),
	}
	if cfg.Progress && s.Interactive {
		opts = append(opts, montepi.WithProgress(tui.NewProgressBar(s.Err)))
	}

	logger.Debug("starting run", "samples", cfg.Samples, "seed", seed, "output_dir", cfg.OutputDir)

	report, err := montepi.New(opts...).Run()
	if err != nil {
		return err
	}

	r := tui.NewReporter(s.Out)
	r.PrintResult(report.Result)
	r.PrintFiles(displayPath(report.InsideFile), displayPath(report.OutsideFile))
	if cfg.Seed == nil {
		// stderr, so stdout stays the report
		tui.NewReporter(s.Err).PrintSeed(seed)
	}

	if cfg.MetricsFile != "" {
		rec := metrics.NewRecorder()
		rec.Observe(report.Result)
		if err := rec.WriteFile(cfg.MetricsFile); err != nil {
			return err
		}
		logger.Debug("metrics written", "path", cfg.MetricsFile)
	}
	return nil
}

// displayPath keeps bare file names for the current directory, matching the plot hint.
func displayPath(p string) string {
	if filepath.Dir(p) == "." {
		return filepath.Base(p)
	}
	return p
}
