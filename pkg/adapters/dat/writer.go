// Package dat writes and reads the two-column sample files consumed by
// external plotting tools such as xmgrace.
package dat

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aretw0/montepi/pkg/domain"
)

const (
	// InsideFile holds the accepted samples.
	InsideFile = "inside.dat"
	// OutsideFile holds the rejected samples.
	OutsideFile = "outside.dat"
)

// Writer implements sampler.Sink on top of inside.dat and outside.dat.
// Each line is "x y". Existing files are truncated.
type Writer struct {
	Dir string

	insideF  *os.File
	outsideF *os.File
	inside   *bufio.Writer
	outside  *bufio.Writer
	line     []byte
}

// Create opens both data files in dir, creating dir if needed.
// If dir is empty, the current directory is used.
func Create(dir string) (*Writer, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to ensure output directory: %w", err)
	}

	in, err := os.Create(filepath.Join(dir, InsideFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", InsideFile, err)
	}
	out, err := os.Create(filepath.Join(dir, OutsideFile))
	if err != nil {
		in.Close()
		return nil, fmt.Errorf("failed to create %s: %w", OutsideFile, err)
	}

	return &Writer{
		Dir:      dir,
		insideF:  in,
		outsideF: out,
		inside:   bufio.NewWriter(in),
		outside:  bufio.NewWriter(out),
		line:     make([]byte, 0, 64),
	}, nil
}

// Record appends the sample to the file matching its classification.
func (w *Writer) Record(s domain.Sample, inside bool) error {
	dst := w.outside
	if inside {
		dst = w.inside
	}
	w.line = AppendSample(w.line[:0], s)
	if _, err := dst.Write(w.line); err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}
	return nil
}

// Close flushes and closes both files.
func (w *Writer) Close() error {
	var errs []error
	if err := w.inside.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("failed to flush %s: %w", InsideFile, err))
	}
	if err := w.outside.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("failed to flush %s: %w", OutsideFile, err))
	}
	if err := w.insideF.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := w.outsideF.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Paths returns the inside and outside file paths.
func (w *Writer) Paths() (string, string) {
	return filepath.Join(w.Dir, InsideFile), filepath.Join(w.Dir, OutsideFile)
}

// AppendSample formats s as "x y\n". Coordinates use the shortest
// representation that parses back to the same float64.
func AppendSample(b []byte, s domain.Sample) []byte {
	b = strconv.AppendFloat(b, s.X, 'g', -1, 64)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, s.Y, 'g', -1, 64)
	return append(b, '\n')
}
