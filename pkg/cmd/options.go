// Package cmd provides the command-line interface for restclient.
// It handles flag parsing, environment variables, validation, and client initialization.
package cmd

import (
	"k8s.io/component-base/logs"
)

const (
	// CommandName is the name of the restclient binary
	CommandName = "restclient"

	// Output formats
	OutputSummary = "summary"
	OutputJSON    = "json"
	OutputYAML    = "yaml"

	// Default values
	DefaultOutput = OutputSummary
)

// Options holds all command-line options for restclient
type Options struct {
	Logging *logs.Options

	// General Options
	ShowVersion bool
	ShowMetrics bool

	// Connection Options
	Kubeconfig string
	Server     string
	Offline    bool

	// Output Options
	Output string

	// Stub Options
	Namespace string
}

// NewOptions creates default options
func NewOptions() *Options {
	return &Options{
		Logging: logs.NewOptions(),
		Output:  DefaultOutput,
	}
}
