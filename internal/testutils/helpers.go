package testutils

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupOutputDir creates a temporary directory for data files.
// It returns the absolute path and fails the test immediately on error.
func SetupOutputDir(t *testing.T) string {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	return absPath
}

// CountLines returns the number of lines in the file at path.
func CountLines(t *testing.T, path string) int {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err, "Failed to open %s", path)
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		n++
	}
	require.NoError(t, sc.Err(), "Failed to scan %s", path)
	return n
}
