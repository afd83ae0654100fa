package cmd

import (
	"fmt"
	"sync"

	logsapi "k8s.io/component-base/logs/api/v1"
)

// Logging configuration can only be applied once per process.
var (
	loggingOnce sync.Once
	loggingErr  error
)

// Validate validates all options
func (o *Options) Validate() []error {
	var errs []error

	// Validate logging configuration
	if err := o.applyLogging(); err != nil {
		errs = append(errs, err)
	}

	// Validate output format
	if err := o.validateOutput(); err != nil {
		errs = append(errs, err)
	}

	// Validate connection options
	if err := o.validateConnection(); err != nil {
		errs = append(errs, err)
	}

	return errs
}

func (o *Options) applyLogging() error {
	loggingOnce.Do(func() {
		loggingErr = logsapi.ValidateAndApply(o.Logging, nil)
	})
	return loggingErr
}

// validateOutput validates the output format selection
func (o *Options) validateOutput() error {
	validOutputs := map[string]bool{
		OutputSummary: true,
		OutputJSON:    true,
		OutputYAML:    true,
	}

	if !validOutputs[o.Output] {
		return fmt.Errorf("invalid output format %q (must be: summary, json, or yaml)", o.Output)
	}

	return nil
}

// validateConnection validates the connection configuration
func (o *Options) validateConnection() error {
	// Load from environment variables first
	o.loadConnectionFromEnv()

	if o.Offline && o.Kubeconfig != "" {
		return fmt.Errorf("--offline cannot be combined with a kubeconfig (use --server to name the host)")
	}

	return nil
}
