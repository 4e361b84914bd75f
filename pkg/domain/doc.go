/*
Package domain contains the core models of the π estimator.

It defines the fundamental values exchanged between the point sources, the sampling
loop and the output sinks. This package is kept pure and free of external dependencies
like I/O or randomness.

# Key Entities

  - Sample: A point (x, y) drawn from the square [-1,1]×[-1,1].
  - Result: The outcome of a run (counts, point estimate, confidence half-width).
*/
package domain
