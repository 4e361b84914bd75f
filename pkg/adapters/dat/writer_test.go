package dat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/montepi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_SplitsByRegion(t *testing.T) {
	dir := t.TempDir()
	w, err := Create(dir)
	require.NoError(t, err)

	samples := []domain.Sample{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 0}, {X: -2, Y: -2}}
	for _, s := range samples {
		require.NoError(t, w.Record(s, s.Inside()))
	}
	require.NoError(t, w.Close())

	inPath, outPath := w.Paths()
	in, err := os.ReadFile(inPath)
	require.NoError(t, err)
	out, err := os.ReadFile(outPath)
	require.NoError(t, err)

	assert.Equal(t, "0 0\n0.5 0\n", string(in))
	assert.Equal(t, "1 1\n-2 -2\n", string(out))
}

func TestWriter_TruncatesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, InsideFile)
	require.NoError(t, os.WriteFile(stale, []byte("9 9\n9 9\n9 9\n"), 0644))

	w, err := Create(dir)
	require.NoError(t, err)
	require.NoError(t, w.Record(domain.Sample{X: 0.25, Y: -0.25}, true))
	require.NoError(t, w.Close())

	got, err := ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, []domain.Sample{{X: 0.25, Y: -0.25}}, got)
}

func TestWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w, err := Create(dir)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.FileExists(t, filepath.Join(dir, InsideFile))
	assert.FileExists(t, filepath.Join(dir, OutsideFile))
}

func TestCreate_FailsOnUnwritableTarget(t *testing.T) {
	// A regular file where the directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, err := Create(blocker)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output directory")
}

func TestAppendSample_RoundTripsBoundary(t *testing.T) {
	// Full precision survives formatting, so classification is preserved.
	s := domain.Sample{X: 0.12345678901234568, Y: -0.9876543210987654}
	require.True(t, s.Inside())

	got, err := Read(strings.NewReader(string(AppendSample(nil, s))))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, s, got[0])
	assert.True(t, got[0].Inside())
}

func TestRead_Errors(t *testing.T) {
	_, err := Read(strings.NewReader("1 2 3\n"))
	assert.ErrorContains(t, err, "expected 2 columns")

	_, err = Read(strings.NewReader("a 2\n"))
	assert.ErrorContains(t, err, "invalid x")

	_, err = Read(strings.NewReader("1 b\n"))
	assert.ErrorContains(t, err, "invalid y")

	got, err := Read(strings.NewReader("\n0.1 0.2\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Sample{{X: 0.1, Y: 0.2}}, got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.dat"))
	assert.ErrorContains(t, err, "failed to open data file")
}
