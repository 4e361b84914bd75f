package memory

import (
	"sync"

	"github.com/aretw0/montepi/pkg/domain"
)

// Sink implements sampler.Sink in memory, retaining the accepted and rejected
// samples in generation order.
// Safe for concurrent use.
type Sink struct {
	inside  []domain.Sample
	outside []domain.Sample
	closed  bool
	mu      sync.RWMutex
}

// NewSink creates a new in-memory sink.
func NewSink() *Sink {
	return &Sink{}
}

// Record appends the sample to the matching sequence.
func (s *Sink) Record(sample domain.Sample, inside bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inside {
		s.inside = append(s.inside, sample)
	} else {
		s.outside = append(s.outside, sample)
	}
	return nil
}

// Close marks the sink as complete. The retained samples stay readable.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Inside returns a copy of the accepted samples.
func (s *Sink) Inside() []domain.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Sample(nil), s.inside...)
}

// Outside returns a copy of the rejected samples.
func (s *Sink) Outside() []domain.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Sample(nil), s.outside...)
}

// Len returns the total number of recorded samples.
func (s *Sink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inside) + len(s.outside)
}

// Closed reports whether Close has been called.
func (s *Sink) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}
