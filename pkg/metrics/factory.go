package metrics

import (
	"time"

	"k8s.io/component-base/metrics"
)

// FactoryMetrics tracks resource materialization
type FactoryMetrics struct {
	creationsTotal    *metrics.CounterVec
	failuresTotal     *metrics.CounterVec
	operationDuration *metrics.HistogramVec
	listItems         *metrics.HistogramVec
}

// NewFactoryMetrics creates factory metrics collectors
func NewFactoryMetrics() *FactoryMetrics {
	return &FactoryMetrics{
		creationsTotal: metrics.NewCounterVec(
			&metrics.CounterOpts{
				Namespace: Namespace,
				Subsystem: SubsystemFactory,
				Name:      "creations_total",
				Help:      "Total number of resources materialized",
			},
			[]string{"kind", "resolution"},
		),

		failuresTotal: metrics.NewCounterVec(
			&metrics.CounterOpts{
				Namespace: Namespace,
				Subsystem: SubsystemFactory,
				Name:      "failures_total",
				Help:      "Total number of failed factory operations",
			},
			[]string{"operation", "reason"},
		),

		operationDuration: metrics.NewHistogramVec(
			&metrics.HistogramOpts{
				Namespace: Namespace,
				Subsystem: SubsystemFactory,
				Name:      "operation_duration_seconds",
				Help:      "Duration of factory operations",
				Buckets:   metrics.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
			},
			[]string{"operation"},
		),

		listItems: metrics.NewHistogramVec(
			&metrics.HistogramOpts{
				Namespace: Namespace,
				Subsystem: SubsystemFactory,
				Name:      "list_items",
				Help:      "Number of items in materialized collections",
				Buckets:   metrics.ExponentialBuckets(1, 4, 8),
			},
			[]string{"kind"},
		),
	}
}

// Register registers all factory metrics
func (f *FactoryMetrics) Register(registry metrics.KubeRegistry) error {
	collectors := []metrics.Registerable{
		f.creationsTotal,
		f.failuresTotal,
		f.operationDuration,
		f.listItems,
	}

	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// RecordCreation records a materialized resource and how its type was
// resolved. Callers pass KindOther for kinds without a registered type.
func (f *FactoryMetrics) RecordCreation(kind, resolution string) {
	f.creationsTotal.WithLabelValues(kind, resolution).Inc()
}

// RecordFailure records a failed factory operation
func (f *FactoryMetrics) RecordFailure(operation, reason string) {
	f.failuresTotal.WithLabelValues(operation, reason).Inc()
}

// ObserveOperation records the duration of a factory operation
func (f *FactoryMetrics) ObserveOperation(operation string, duration time.Duration) {
	f.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveListItems records the size of a materialized collection
func (f *FactoryMetrics) ObserveListItems(kind string, count int) {
	f.listItems.WithLabelValues(kind).Observe(float64(count))
}
