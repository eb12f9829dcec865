package ringbuffer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/ringkit/metric"
)

// bufferMetrics holds Prometheus metrics for ring buffer operations.
type bufferMetrics struct {
	// Counter metrics - directly incremented without stats duplication
	pushes   prometheus.Counter
	pops     prometheus.Counter
	discards prometheus.Counter
	peeks    prometheus.Counter
	rejects  prometheus.Counter

	// Gauge metrics - updated on operations
	length      prometheus.Gauge
	utilization prometheus.Gauge
}

// newBufferMetrics creates and registers buffer metrics with the provided registry.
func newBufferMetrics(registry *metric.Registry, component string) (*bufferMetrics, error) {
	m := &bufferMetrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "buffer",
			Name:        "pushes_total",
			ConstLabels: prometheus.Labels{"component": component},
			Help:        "Total number of elements inserted into the buffer",
		}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "buffer",
			Name:        "pops_total",
			ConstLabels: prometheus.Labels{"component": component},
			Help:        "Total number of elements consumed from the buffer",
		}),
		discards: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "buffer",
			Name:        "discards_total",
			ConstLabels: prometheus.Labels{"component": component},
			Help:        "Total number of elements dropped by bulk discards",
		}),
		peeks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "buffer",
			Name:        "peeks_total",
			ConstLabels: prometheus.Labels{"component": component},
			Help:        "Total number of non-consuming view operations",
		}),
		rejects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "buffer",
			Name:        "rejects_total",
			ConstLabels: prometheus.Labels{"component": component},
			Help:        "Total number of inserts refused because the buffer was full",
		}),
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringkit",
			Subsystem:   "buffer",
			Name:        "length",
			ConstLabels: prometheus.Labels{"component": component},
			Help:        "Current number of elements in the buffer",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringkit",
			Subsystem:   "buffer",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"component": component},
			Help:        "Buffer utilization as a percentage (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(component, "buffer_pushes", m.pushes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(component, "buffer_pops", m.pops); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(component, "buffer_discards", m.discards); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(component, "buffer_peeks", m.peeks); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(component, "buffer_rejects", m.rejects); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(component, "buffer_length", m.length); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(component, "buffer_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordPushes adds n to the push counter and updates length/utilization.
func (m *bufferMetrics) recordPushes(n, length, capacity int) {
	m.pushes.Add(float64(n))
	m.length.Set(float64(length))
	m.utilization.Set(float64(length) / float64(capacity))
}

// recordPops adds n to the pop counter and updates length/utilization.
func (m *bufferMetrics) recordPops(n, length, capacity int) {
	m.pops.Add(float64(n))
	m.length.Set(float64(length))
	m.utilization.Set(float64(length) / float64(capacity))
}

// recordDiscards adds n to the discard counter and updates length/utilization.
func (m *bufferMetrics) recordDiscards(n, length, capacity int) {
	m.discards.Add(float64(n))
	m.length.Set(float64(length))
	m.utilization.Set(float64(length) / float64(capacity))
}

// recordPeek increments the peek counter.
func (m *bufferMetrics) recordPeek() {
	m.peeks.Inc()
}

// recordReject increments the reject counter.
func (m *bufferMetrics) recordReject() {
	m.rejects.Inc()
}

// updateLength sets the current buffer length and utilization.
func (m *bufferMetrics) updateLength(length, capacity int) {
	m.length.Set(float64(length))
	m.utilization.Set(float64(length) / float64(capacity))
}
