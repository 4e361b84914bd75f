package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/montepi/pkg/domain"
	"github.com/aretw0/montepi/pkg/estimate"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	r := NewRecorder()

	res := estimate.Compute(3, 4)
	res.Duration = 25 * time.Millisecond
	r.Observe(res)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.samples.WithLabelValues("inside")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.samples.WithLabelValues("outside")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.estimate))
	assert.Equal(t, res.HalfWidth, testutil.ToFloat64(r.halfWidth))
	assert.Equal(t, res.RelativeError(), testutil.ToFloat64(r.relError))
	assert.Equal(t, 1, testutil.CollectAndCount(r.duration))
}

func TestRecorder_WriteFile(t *testing.T) {
	r := NewRecorder()
	r.Observe(domain.Result{Samples: 4, Inside: 2, PiEstimate: 2, HalfWidth: 1.96})

	path := filepath.Join(t.TempDir(), "montepi.prom")
	require.NoError(t, r.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `montepi_samples_total{region="inside"} 2`)
	assert.Contains(t, out, `montepi_samples_total{region="outside"} 2`)
	assert.Contains(t, out, "montepi_pi_estimate 2")
	assert.Contains(t, out, "montepi_confidence_half_width 1.96")
}

func TestRecorder_WriteFileError(t *testing.T) {
	r := NewRecorder()
	err := r.WriteFile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	assert.ErrorContains(t, err, "failed to write metrics file")
}
