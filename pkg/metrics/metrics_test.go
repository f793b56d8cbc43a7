package metrics_test

import (
	"context"
	"productreader/pkg/metrics"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewPipeline(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewPipeline(reg)

	m.Runs.WithLabelValues("presented").Inc()
	m.InFlight.Inc()
	m.StaleDiscarded.Inc()
	m.UnknownCategories.WithLabelValues("productType").Add(2)
	m.StageDuration.WithLabelValues("querying").Observe(0.2)

	require.InDelta(t, 1, testutil.ToFloat64(m.Runs.WithLabelValues("presented")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.InFlight), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.StaleDiscarded), 0)
	require.InDelta(t, 2, testutil.ToFloat64(m.UnknownCategories.WithLabelValues("productType")), 0)
	require.Equal(t, 1, testutil.CollectAndCount(m.StageDuration))

	// registering twice on the same registry is a programming error
	require.Panics(t, func() { metrics.NewPipeline(reg) })
}

func TestNewMeterProvider(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	counter, err := mp.Meter("test").Int64Counter("bridged")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "bridged") {
			found = true
		}
	}
	require.True(t, found, "otel instrument should be exported through the registry")
}
