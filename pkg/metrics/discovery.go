package metrics

import (
	"k8s.io/component-base/metrics"
)

// DiscoveryMetrics tracks server discovery done by the type mapper
type DiscoveryMetrics struct {
	refreshTotal *metrics.CounterVec
	endpoints    *metrics.GaugeVec
}

// NewDiscoveryMetrics creates discovery metrics collectors
func NewDiscoveryMetrics() *DiscoveryMetrics {
	return &DiscoveryMetrics{
		refreshTotal: metrics.NewCounterVec(
			&metrics.CounterOpts{
				Namespace: Namespace,
				Subsystem: SubsystemDiscovery,
				Name:      "refresh_total",
				Help:      "Total number of discovery loads",
			},
			[]string{"status"},
		),

		endpoints: metrics.NewGaugeVec(
			&metrics.GaugeOpts{
				Namespace: Namespace,
				Subsystem: SubsystemDiscovery,
				Name:      "endpoints",
				Help:      "Number of endpoints known from the last discovery load",
			},
			[]string{},
		),
	}
}

// Register registers all discovery metrics
func (d *DiscoveryMetrics) Register(registry metrics.KubeRegistry) error {
	collectors := []metrics.Registerable{
		d.refreshTotal,
		d.endpoints,
	}

	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// RecordRefresh records a discovery load and the endpoints it found. A
// nil receiver records nothing.
func (d *DiscoveryMetrics) RecordRefresh(status string, endpoints int) {
	if d == nil {
		return
	}
	d.refreshTotal.WithLabelValues(status).Inc()
	if status != StatusError {
		d.endpoints.WithLabelValues().Set(float64(endpoints))
	}
}
