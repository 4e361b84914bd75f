package sampler

import (
	"log/slog"
)

// DefaultProgressBatch is the number of draws between progress updates.
const DefaultProgressBatch = 10_000

// Option defines a functional option for configuring the Sampler.
type Option func(*Sampler)

// WithSink appends a sink. Sinks receive samples in registration order.
func WithSink(sink Sink) Option {
	return func(s *Sampler) {
		s.sinks = append(s.sinks, sink)
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sampler) {
		s.logger = logger
	}
}

// WithProgress configures the progress reporter.
func WithProgress(p Progress) Option {
	return func(s *Sampler) {
		s.progress = p
	}
}

// WithProgressBatch sets how many draws happen between progress updates.
func WithProgressBatch(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.batch = n
		}
	}
}

// WithSeed records the seed of the source in the Result.
func WithSeed(seed uint64) Option {
	return func(s *Sampler) {
		s.seed = seed
	}
}
