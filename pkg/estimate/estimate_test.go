package estimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPi(t *testing.T) {
	assert.Equal(t, 2.0, Pi(2, 4))
	assert.Equal(t, 4.0, Pi(10, 10))
	assert.Equal(t, 0.0, Pi(0, 10))
	assert.Equal(t, 0.0, Pi(0, 0), "empty run must not divide by zero")
}

func TestHalfWidth(t *testing.T) {
	// pi=2, n=4: 1.96 * sqrt(4*2*0.5/4) = 1.96
	assert.InDelta(t, 1.96, HalfWidth(2.0, 4), 1e-12)

	// Degenerate proportions have no spread.
	assert.Equal(t, 0.0, HalfWidth(0, 100))
	assert.Equal(t, 0.0, HalfWidth(4, 100))
	assert.Equal(t, 0.0, HalfWidth(3, 0))

	// Matches the closed form for a typical estimate.
	pi, n := 3.14, 1_000_000
	expected := 1.96 * math.Sqrt(4*pi*(1-pi/4)/float64(n))
	assert.InDelta(t, expected, HalfWidth(pi, n), 1e-15)
}

func TestHalfWidth_ShrinksWithN(t *testing.T) {
	small := HalfWidth(math.Pi, 1_000)
	large := HalfWidth(math.Pi, 100_000)
	assert.InDelta(t, small/10, large, 1e-12, "half-width scales as 1/sqrt(n)")
}

func TestCompute(t *testing.T) {
	r := Compute(785, 1000)
	assert.Equal(t, 1000, r.Samples)
	assert.Equal(t, 785, r.Inside)
	assert.Equal(t, 215, r.Outside())
	assert.InDelta(t, 3.14, r.PiEstimate, 1e-12)
	assert.InDelta(t, 0.785, r.Ratio(), 1e-12)
	assert.Greater(t, r.HalfWidth, 0.0)
}
