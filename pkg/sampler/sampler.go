package sampler

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/montepi/internal/logging"
	"github.com/aretw0/montepi/pkg/domain"
	"github.com/aretw0/montepi/pkg/estimate"
	"github.com/aretw0/montepi/pkg/source"
)

// Sampler runs the draw-classify-record loop.
type Sampler struct {
	src      source.PointSource
	sinks    []Sink
	logger   *slog.Logger
	progress Progress
	batch    int
	seed     uint64
	now      func() time.Time
}

// New creates a Sampler drawing from src.
func New(src source.PointSource, opts ...Option) *Sampler {
	s := &Sampler{
		src:      src,
		logger:   logging.NewNop(),
		progress: nopProgress{},
		batch:    DefaultProgressBatch,
		now:      time.Now,
	}
	if u, ok := src.(interface{ Seed() uint64 }); ok {
		s.seed = u.Seed()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run draws n samples and returns the estimate.
// Sinks are closed before Run returns, even when n is rejected.
func (s *Sampler) Run(n int) (res domain.Result, err error) {
	defer func() {
		if cerr := s.closeSinks(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if n <= 0 {
		return domain.Result{}, fmt.Errorf("%w: got %d", domain.ErrInvalidSampleCount, n)
	}
	if s.src == nil {
		return domain.Result{}, domain.ErrNilSource
	}

	s.logger.Debug("sampling started", "samples", n, "seed", s.seed, "sinks", len(s.sinks))
	start := s.now()
	s.progress.Start(n)

	inside := 0
	pending := 0
	for i := 0; i < n; i++ {
		sample := s.src.Next()
		in := sample.Inside()
		if in {
			inside++
		}
		for _, sink := range s.sinks {
			if err := sink.Record(sample, in); err != nil {
				s.progress.Finish()
				return domain.Result{}, fmt.Errorf("failed to record sample %d: %w", i, err)
			}
		}
		pending++
		if pending == s.batch {
			s.progress.Add(pending)
			pending = 0
		}
	}
	if pending > 0 {
		s.progress.Add(pending)
	}
	s.progress.Finish()

	res = estimate.Compute(inside, n)
	res.Seed = s.seed
	res.Duration = s.now().Sub(start)

	s.logger.Debug("sampling finished",
		"inside", res.Inside,
		"pi", res.PiEstimate,
		"half_width", res.HalfWidth,
		"duration", res.Duration,
	)
	return res, nil
}

func (s *Sampler) closeSinks() error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("failed to close sinks: %w", errors.Join(errs...))
	}
	return nil
}
