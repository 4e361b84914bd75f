/*
Package montepi estimates the constant π by Monte Carlo sampling.

It draws uniformly distributed points in the square [-1,1]×[-1,1], counts the
fraction falling inside the inscribed unit circle and reports the estimate
4·inside/N with a 95% confidence half-width. Accepted and rejected points are
written to inside.dat and outside.dat for external plotting tools.

# Concept

The estimator is a single synchronous pass. Randomness is injected through a
source.PointSource, so a run can be reproduced from its seed or replayed from a
fixed list of points. Classified samples flow to sampler.Sink implementations
(flat files, memory) in generation order.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/montepi"
	)

	func main() {
		est := montepi.New(
			montepi.WithSamples(100_000),
			montepi.WithSeed(42),
		)

		report, err := est.Run()
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("π ≈ %.6f ± %.6f\n", report.PiEstimate, report.HalfWidth)
	}
*/
package montepi
