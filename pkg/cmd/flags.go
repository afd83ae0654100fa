package cmd

import (
	cliflag "k8s.io/component-base/cli/flag"
	logsapi "k8s.io/component-base/logs/api/v1"
)

// Flags returns all command-line flags organized by category
func (o *Options) Flags() cliflag.NamedFlagSets {
	fs := cliflag.NamedFlagSets{}

	o.addGeneralFlags(&fs)
	o.addConnectionFlags(&fs)
	o.addOutputFlags(&fs)
	logsapi.AddFlags(o.Logging, fs.FlagSet("logging"))

	return fs
}

// addGeneralFlags adds general command flags
func (o *Options) addGeneralFlags(fs *cliflag.NamedFlagSets) {
	generalFS := fs.FlagSet("general")
	generalFS.BoolVar(&o.ShowVersion, "version", false,
		"Show version and exit")
	generalFS.BoolVar(&o.ShowMetrics, "metrics", false,
		"Print factory metrics to stderr after the command")
}

// addConnectionFlags adds the flags selecting the server and how kinds are mapped
func (o *Options) addConnectionFlags(fs *cliflag.NamedFlagSets) {
	connFS := fs.FlagSet("connection")
	connFS.StringVar(&o.Kubeconfig, "kubeconfig", "",
		"Path to kubeconfig file (can also use RESTCLIENT_KUBECONFIG env var)")
	connFS.StringVar(&o.Server, "server", "",
		"Address of the API server, overrides the kubeconfig (can also use RESTCLIENT_SERVER env var)")
	connFS.BoolVar(&o.Offline, "offline", false,
		"Map kinds with the built-in OpenShift endpoints instead of server discovery")
}

// addOutputFlags adds output formatting flags
func (o *Options) addOutputFlags(fs *cliflag.NamedFlagSets) {
	outputFS := fs.FlagSet("output")
	outputFS.StringVarP(&o.Output, "output", "o", DefaultOutput,
		"Output format: summary, json, or yaml")
	outputFS.StringVarP(&o.Namespace, "namespace", "n", "",
		"Namespace of stubbed resources")
}
