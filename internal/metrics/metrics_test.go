package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetricsRegistry_IsolatedRegistries(t *testing.T) {
	// Two registries must not collide on metric names
	a := NewMetricsRegistry(prometheus.NewRegistry())
	b := NewMetricsRegistry(prometheus.NewRegistry())

	a.TripsCreatedTotal.Inc()
	a.TripsCreatedTotal.Inc()
	b.TripsCreatedTotal.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(a.TripsCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.TripsCreatedTotal))
}

func TestNewMetricsRegistry_LabelledCounters(t *testing.T) {
	m := NewMetricsRegistry(prometheus.NewRegistry())

	m.CostEstimatesTotal.WithLabelValues("ok").Inc()
	m.CostEstimatesTotal.WithLabelValues("failed").Inc()
	m.CostEstimatesTotal.WithLabelValues("failed").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CostEstimatesTotal.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CostEstimatesTotal.WithLabelValues("failed")))
}
