package metrics

import (
	"fmt"

	"k8s.io/component-base/metrics"
)

// Registry holds all metrics collectors
type Registry struct {
	factory   *FactoryMetrics
	discovery *DiscoveryMetrics
}

// NewRegistry creates a new metrics registry with all collectors
func NewRegistry() *Registry {
	return &Registry{
		factory:   NewFactoryMetrics(),
		discovery: NewDiscoveryMetrics(),
	}
}

// Factory returns the factory metrics collector
func (r *Registry) Factory() *FactoryMetrics {
	return r.factory
}

// Discovery returns the discovery metrics collector
func (r *Registry) Discovery() *DiscoveryMetrics {
	return r.discovery
}

// Register registers all metrics with the Kubernetes registry. Collectors
// record nothing until they are registered.
func (r *Registry) Register(kubeRegistry metrics.KubeRegistry) error {
	if err := r.factory.Register(kubeRegistry); err != nil {
		return fmt.Errorf("failed to register factory metrics: %w", err)
	}

	if err := r.discovery.Register(kubeRegistry); err != nil {
		return fmt.Errorf("failed to register discovery metrics: %w", err)
	}

	return nil
}
