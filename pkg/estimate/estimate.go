// Package estimate holds the statistics of the Monte Carlo π estimator.
package estimate

import (
	"math"

	"github.com/aretw0/montepi/pkg/domain"
)

// Z95 is the two-sided standard normal quantile for 95% confidence.
const Z95 = 1.96

// Pi returns the point estimate 4·inside/n. It returns 0 when n <= 0.
func Pi(inside, n int) float64 {
	if n <= 0 {
		return 0
	}
	return 4.0 * float64(inside) / float64(n)
}

// HalfWidth returns the 95% confidence half-width for a π estimate over n samples,
// using the normal approximation to the binomial proportion p = pi/4 scaled by 4:
//
//	1.96 · sqrt(4·pi·(1 - pi/4) / n)
func HalfWidth(pi float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	v := 4.0 * pi * (1.0 - pi/4.0) / float64(n)
	if v <= 0 {
		return 0
	}
	return Z95 * math.Sqrt(v)
}

// Compute builds a Result from raw counts.
func Compute(inside, n int) domain.Result {
	pi := Pi(inside, n)
	return domain.Result{
		Samples:    n,
		Inside:     inside,
		PiEstimate: pi,
		HalfWidth:  HalfWidth(pi, n),
	}
}
