package domain

import "errors"

// ErrInvalidSampleCount is returned when a run is requested with N <= 0.
var ErrInvalidSampleCount = errors.New("sample count must be positive")

// ErrNilSource is returned when the sampler has no point source to draw from.
var ErrNilSource = errors.New("point source is nil")
