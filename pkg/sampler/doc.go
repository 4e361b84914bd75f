/*
Package sampler implements the Monte Carlo sampling loop.

A Sampler draws N points from a source.PointSource, classifies each against the
unit circle, forwards it to every registered Sink in generation order and
returns the resulting estimate.

# Usage

	s := sampler.New(source.NewUniform(seed),
		sampler.WithSink(memory.NewSink()),
		sampler.WithLogger(logger),
	)
	res, err := s.Run(1_000_000)

Runs are synchronous and single-threaded. The only failures are a misconfigured
sampler and sink errors, which abort the run.
*/
package sampler
