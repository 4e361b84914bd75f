package domain

import (
	"math"
	"time"
)

// Result captures the outcome of a single estimation run.
type Result struct {
	// Samples is the number of points drawn (N).
	Samples int

	// Inside is the number of points that fell in the unit disc.
	Inside int

	// PiEstimate is 4·Inside/Samples.
	PiEstimate float64

	// HalfWidth is the 95% confidence half-width around PiEstimate.
	HalfWidth float64

	// Seed is the seed of the uniform source, when one was used.
	Seed uint64

	// Duration is the wall-clock time spent in the sampling loop.
	Duration time.Duration
}

// Outside returns the number of rejected points.
func (r Result) Outside() int {
	return r.Samples - r.Inside
}

// Ratio returns Inside/Samples, or 0 for an empty result.
func (r Result) Ratio() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.Inside) / float64(r.Samples)
}

// RelativeError returns |PiEstimate - π| / π.
func (r Result) RelativeError() float64 {
	return math.Abs(r.PiEstimate-math.Pi) / math.Pi
}

// Covers reports whether the confidence interval contains π.
func (r Result) Covers() bool {
	return math.Abs(r.PiEstimate-math.Pi) < r.HalfWidth
}
