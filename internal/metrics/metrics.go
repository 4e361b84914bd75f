// Package metrics exposes the outcome of a run as Prometheus collectors.
package metrics

import (
	"fmt"

	"github.com/aretw0/montepi/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns a private registry so runs never touch the global one.
type Recorder struct {
	Registry *prometheus.Registry

	samples   *prometheus.CounterVec
	estimate  prometheus.Gauge
	halfWidth prometheus.Gauge
	relError  prometheus.Gauge
	duration  prometheus.Histogram
}

// NewRecorder creates and registers the estimator collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		samples: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "montepi_samples_total",
				Help: "Total number of drawn samples by region",
			},
			[]string{"region"},
		),
		estimate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "montepi_pi_estimate",
			Help: "Point estimate of pi from the last run",
		}),
		halfWidth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "montepi_confidence_half_width",
			Help: "95% confidence half-width of the last estimate",
		}),
		relError: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "montepi_relative_error",
			Help: "Relative error of the last estimate against math.Pi",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "montepi_run_duration_seconds",
			Help:    "Duration of the sampling loop",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	r.Registry.MustRegister(r.samples, r.estimate, r.halfWidth, r.relError, r.duration)
	return r
}

// Observe records a finished run.
func (r *Recorder) Observe(res domain.Result) {
	r.samples.WithLabelValues(string(domain.RegionInside)).Add(float64(res.Inside))
	r.samples.WithLabelValues(string(domain.RegionOutside)).Add(float64(res.Outside()))
	r.estimate.Set(res.PiEstimate)
	r.halfWidth.Set(res.HalfWidth)
	r.relError.Set(res.RelativeError())
	r.duration.Observe(res.Duration.Seconds())
}

// WriteFile dumps the registry in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
