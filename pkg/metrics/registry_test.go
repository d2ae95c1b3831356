package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newCounter() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{Name: "lookups_total", Help: "test"})
}

func TestRegisterOrReuse(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := RegisterOrReuse(reg, newCounter())
	second := RegisterOrReuse(reg, newCounter())
	second.Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(first))
	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.Len(t, families, 1)
}

func TestRegisterOrReuseNilRegistry(t *testing.T) {
	c := RegisterOrReuse(nil, newCounter())
	c.Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(c))
}

func TestRegisterOrReusePanicsOnConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterOrReuse(reg, newCounter())

	assert.Panics(t, func() {
		RegisterOrReuse(reg, prometheus.NewGauge(prometheus.GaugeOpts{Name: "lookups_total", Help: "other"}))
	})
}
