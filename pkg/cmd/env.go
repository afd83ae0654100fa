package cmd

import (
	"os"
)

// Environment variable names for connection configuration
const (
	EnvKubeconfig = "RESTCLIENT_KUBECONFIG"
	EnvServer     = "RESTCLIENT_SERVER"
)

// loadConnectionFromEnv loads connection configuration from environment variables
// Command-line flags take precedence over environment variables
func (o *Options) loadConnectionFromEnv() {
	if o.Kubeconfig == "" {
		o.Kubeconfig = os.Getenv(EnvKubeconfig)
	}

	if o.Server == "" {
		o.Server = os.Getenv(EnvServer)
	}
}
