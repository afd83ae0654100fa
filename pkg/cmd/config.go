package cmd

import (
	"fmt"

	"github.com/openshift/restclient-go/pkg/client"
	"github.com/openshift/restclient-go/pkg/factory"
	"github.com/openshift/restclient-go/pkg/metrics"
	"github.com/openshift/restclient-go/pkg/typemapper"
	"k8s.io/client-go/rest"
	compmetrics "k8s.io/component-base/metrics"
)

// Config holds everything a command needs to run
type Config struct {
	Client  client.Client
	Factory *factory.ResourceFactory

	// Metrics gathers the metrics recorded while the command runs
	Metrics compmetrics.KubeRegistry
}

// Complete builds the client and factory described by the options
func (o *Options) Complete() (*Config, error) {
	c, err := o.buildClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	kubeRegistry := compmetrics.NewKubeRegistry()
	if err := metrics.Global().Register(kubeRegistry); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &Config{
		Client:  c,
		Factory: factory.New(c, factory.WithMetrics(metrics.Global().Factory())),
		Metrics: kubeRegistry,
	}, nil
}

// buildClient creates the client the factory hands to resources
func (o *Options) buildClient() (client.Client, error) {
	if o.Offline {
		return client.NewWithMapper(
			&rest.Config{Host: o.Server},
			typemapper.NewStatic(typemapper.OpenShiftEndpoints()...),
		), nil
	}

	config, err := client.LoadConfig(o.Kubeconfig, o.Server)
	if err != nil {
		return nil, err
	}
	return client.NewForConfig(config)
}
