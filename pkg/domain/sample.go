package domain

// Region identifies which side of the unit circle a sample falls on.
type Region string

const (
	RegionInside  Region = "inside"  // x²+y² <= 1
	RegionOutside Region = "outside" // x²+y² > 1
)

// Sample is a single point drawn by the estimator.
type Sample struct {
	X float64
	Y float64
}

// NormSquared returns x²+y².
func (s Sample) NormSquared() float64 {
	return s.X*s.X + s.Y*s.Y
}

// Inside reports whether the sample lies in the closed unit disc.
func (s Sample) Inside() bool {
	return s.NormSquared() <= 1.0
}
