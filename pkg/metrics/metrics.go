// Package metrics holds the Prometheus collectors of the scan pipeline and
// the OpenTelemetry meter provider bridged into the same registry.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const namespace = "productreader"

// Pipeline groups the collectors updated by the tag reading pipeline.
type Pipeline struct {
	// Runs counts finished scans by outcome ("presented" or an error kind).
	Runs *prometheus.CounterVec
	// StageDuration observes how long each pipeline stage took.
	StageDuration *prometheus.HistogramVec
	// InFlight is the number of scans currently running.
	InFlight prometheus.Gauge
	// StaleDiscarded counts results dropped because a newer scan had started.
	StaleDiscarded prometheus.Counter
	// UnknownCategories counts decoded enum values outside the known set, by field.
	UnknownCategories *prometheus.CounterVec
}

// NewPipeline registers the pipeline collectors on reg.
func NewPipeline(reg prometheus.Registerer) *Pipeline {
	f := promauto.With(reg)

	return &Pipeline{
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Finished tag scans by outcome.",
		}, []string{"outcome"}),
		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of each scan stage.",
			Buckets:   DefaultBuckets,
		}, []string{"stage"}),
		InFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scans_in_flight",
			Help:      "Scans currently running.",
		}),
		StaleDiscarded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_results_discarded_total",
			Help:      "Scan results dropped because a newer scan had started.",
		}),
		UnknownCategories: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_categories_total",
			Help:      "Decoded enum values outside the known set.",
		}, []string{"field"}),
	}
}

// NewMeterProvider returns an OpenTelemetry meter provider whose instruments
// are exported through reg, so they show up next to the native collectors.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}
