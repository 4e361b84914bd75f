// Package source provides the point generators the sampler draws from.
//
// Randomness is injected through PointSource so that runs can be replayed
// deterministically in tests and reproduced from a seed on the command line.
package source

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/aretw0/montepi/pkg/domain"
)

// PointSource yields successive samples.
type PointSource interface {
	Next() domain.Sample
}

// Float64er is any generator of uniform values in [0, 1).
// *rand.Rand from math/rand and math/rand/v2 both satisfy it.
type Float64er interface {
	Float64() float64
}

// Uniform draws points uniformly from [-1,1)×[-1,1).
type Uniform struct {
	rng  Float64er
	seed uint64
}

// NewUniform returns a uniform source backed by a PCG generator seeded with seed.
func NewUniform(seed uint64) *Uniform {
	return &Uniform{
		rng:  rand.New(rand.NewPCG(seed, 0)),
		seed: seed,
	}
}

// NewFromRand wraps an arbitrary generator. Seed reports 0.
func NewFromRand(r Float64er) *Uniform {
	return &Uniform{rng: r}
}

// Next draws x then y.
func (u *Uniform) Next() domain.Sample {
	x := 2*u.rng.Float64() - 1
	y := 2*u.rng.Float64() - 1
	return domain.Sample{X: x, Y: y}
}

// Seed returns the seed the source was built with.
func (u *Uniform) Seed() uint64 {
	return u.seed
}

// RandomSeed returns a seed from the operating system's entropy source.
// It falls back to the runtime generator if the entropy source fails.
func RandomSeed() uint64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Uint64()
	}
	return binary.BigEndian.Uint64(buf[:])
}
