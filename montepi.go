package montepi

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/montepi/internal/logging"
	"github.com/aretw0/montepi/pkg/adapters/dat"
	"github.com/aretw0/montepi/pkg/domain"
	"github.com/aretw0/montepi/pkg/sampler"
	"github.com/aretw0/montepi/pkg/source"
)

// DefaultSamples is the number of points drawn when WithSamples is not given.
const DefaultSamples = 1_000_000

// Estimator is the high-level entry point for the π estimator.
// It wires a point source, the sampling loop and the output sinks.
type Estimator struct {
	samples    int
	src        source.PointSource
	seed       *uint64
	outputDir  string
	writeFiles bool
	sinks      []sampler.Sink
	progress   sampler.Progress
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Estimator.
type Option func(*Estimator)

// WithSamples sets N, the number of points to draw.
func WithSamples(n int) Option {
	return func(e *Estimator) {
		e.samples = n
	}
}

// WithSeed fixes the seed of the default uniform source.
// It has no effect when WithSource is given.
func WithSeed(seed uint64) Option {
	return func(e *Estimator) {
		e.seed = &seed
	}
}

// WithSource injects a custom point source, bypassing the seeded uniform source.
func WithSource(src source.PointSource) Option {
	return func(e *Estimator) {
		e.src = src
	}
}

// WithOutputDir sets the directory receiving inside.dat and outside.dat.
func WithOutputDir(dir string) Option {
	return func(e *Estimator) {
		e.outputDir = dir
	}
}

// WithoutFiles disables the data file output.
func WithoutFiles() Option {
	return func(e *Estimator) {
		e.writeFiles = false
	}
}

// WithSink registers an additional sink, called after the file sink.
func WithSink(sink sampler.Sink) Option {
	return func(e *Estimator) {
		e.sinks = append(e.sinks, sink)
	}
}

// WithProgress sets a progress reporter for the sampling loop.
func WithProgress(p sampler.Progress) Option {
	return func(e *Estimator) {
		e.progress = p
	}
}

// WithLogger sets a custom structured logger for the estimator.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Estimator) {
		e.logger = logger
	}
}

// Report is the outcome of Estimator.Run.
type Report struct {
	domain.Result

	// InsideFile and OutsideFile are empty when file output is disabled.
	InsideFile  string
	OutsideFile string
}

// New initializes a new Estimator.
// By default it draws DefaultSamples points from a freshly seeded uniform source
// and writes the data files to the current directory.
func New(opts ...Option) *Estimator {
	e := &Estimator{
		samples:    DefaultSamples,
		outputDir:  ".",
		writeFiles: true,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = logging.NewNop()
	}

	if e.src == nil {
		seed := source.RandomSeed()
		if e.seed != nil {
			seed = *e.seed
		}
		e.src = source.NewUniform(seed)
	}
	return e
}

// Run draws the samples, writes the sinks and returns the estimate.
// Failing to create the data files is returned before any sample is drawn.
func (e *Estimator) Run() (*Report, error) {
	report := &Report{}
	var sinks []sampler.Sink

	if e.writeFiles {
		w, err := dat.Create(e.outputDir)
		if err != nil {
			return nil, err
		}
		report.InsideFile, report.OutsideFile = w.Paths()
		sinks = append(sinks, w)
	}
	sinks = append(sinks, e.sinks...)

	opts := []sampler.Option{sampler.WithLogger(e.logger)}
	for _, sink := range sinks {
		opts = append(opts, sampler.WithSink(sink))
	}
	if e.progress != nil {
		opts = append(opts, sampler.WithProgress(e.progress))
	}

	res, err := sampler.New(e.src, opts...).Run(e.samples)
	if err != nil {
		return nil, fmt.Errorf("estimation failed: %w", err)
	}
	report.Result = res

	e.logger.Info("estimation complete",
		"samples", res.Samples,
		"inside", res.Inside,
		"pi", res.PiEstimate,
		"half_width", res.HalfWidth,
		"seed", res.Seed,
		"duration", res.Duration,
	)
	return report, nil
}
