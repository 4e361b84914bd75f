package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/aretw0/montepi/internal/presentation/tui"
	"github.com/aretw0/montepi/pkg/adapters/dat"
	"github.com/aretw0/montepi/pkg/estimate"
)

// ErrMisclassified is returned by Verify when a data file holds a point on the wrong side.
var ErrMisclassified = errors.New("data files contain misclassified samples")

// Verify re-reads inside.dat and outside.dat from dir, checks every row is on the
// right side of the unit circle and prints the estimate recomputed from the files.
func Verify(dir string, s Streams) (tui.Verification, error) {
	var v tui.Verification

	inside, err := dat.ReadFile(filepath.Join(dir, dat.InsideFile))
	if err != nil {
		return v, err
	}
	outside, err := dat.ReadFile(filepath.Join(dir, dat.OutsideFile))
	if err != nil {
		return v, err
	}

	v.Inside, v.Outside = len(inside), len(outside)
	for _, p := range inside {
		if !p.Inside() {
			v.Misclassified++
		}
	}
	for _, p := range outside {
		if p.Inside() {
			v.Misclassified++
		}
	}

	r := tui.NewReporter(s.Out)
	r.PrintVerification(v)
	if total := v.Inside + v.Outside; total > 0 {
		r.PrintResult(estimate.Compute(v.Inside, total))
	}

	if v.Misclassified > 0 {
		return v, fmt.Errorf("%w: %d rows", ErrMisclassified, v.Misclassified)
	}
	return v, nil
}
