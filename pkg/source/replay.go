package source

import "github.com/aretw0/montepi/pkg/domain"

// Replay yields a fixed sequence of samples, starting over once exhausted.
// Points are returned verbatim, so they may lie outside the sampling square.
type Replay struct {
	samples []domain.Sample
	pos     int
}

// NewReplay creates a replay source. It panics if no samples are given.
func NewReplay(samples ...domain.Sample) *Replay {
	if len(samples) == 0 {
		panic("source: replay requires at least one sample")
	}
	cp := make([]domain.Sample, len(samples))
	copy(cp, samples)
	return &Replay{samples: cp}
}

// Next returns the next sample in the sequence.
func (r *Replay) Next() domain.Sample {
	s := r.samples[r.pos]
	r.pos = (r.pos + 1) % len(r.samples)
	return s
}
