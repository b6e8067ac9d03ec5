package vector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors shared by vectors and pools.
// A nil *Metrics records nothing.
type Metrics struct {
	reallocations  prometheus.Counter
	growthFailures prometheus.Counter
	elementsMoved  prometheus.Counter
	slotsInUse     prometheus.Gauge
	poolExhausted  prometheus.Counter
}

// NewMetrics registers the collectors with reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		reallocations: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "vector_reallocations_total",
			Help: "Total number of buffer reallocations performed by the growth engine.",
		}),
		growthFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "vector_growth_failures_total",
			Help: "Total number of capacity requests the growth engine could not satisfy.",
		}),
		elementsMoved: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "vector_elements_moved_total",
			Help: "Total number of elements shifted by insert and erase.",
		}),
		slotsInUse: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "vector_pool_slots_in_use",
			Help: "Number of pool slots held by live handles.",
		}),
		poolExhausted: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "vector_pool_exhausted_total",
			Help: "Total number of slot acquisitions that found the pool full.",
		}),
	}
}

func (m *Metrics) grew() {
	if m != nil {
		m.reallocations.Inc()
	}
}

func (m *Metrics) growthFailed() {
	if m != nil {
		m.growthFailures.Inc()
	}
}

func (m *Metrics) moved(n int) {
	if m != nil && n > 0 {
		m.elementsMoved.Add(float64(n))
	}
}

func (m *Metrics) slotAcquired() {
	if m != nil {
		m.slotsInUse.Inc()
	}
}

func (m *Metrics) slotReleased() {
	if m != nil {
		m.slotsInUse.Dec()
	}
}

func (m *Metrics) exhausted() {
	if m != nil {
		m.poolExhausted.Inc()
	}
}
