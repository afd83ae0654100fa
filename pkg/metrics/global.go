package metrics

import (
	"sync"
)

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Global returns the process-wide collectors. A ResourceFactory built
// without WithMetrics records into Global().Factory() and the discovery
// mapper into Global().Discovery(). Nothing is exported until the
// collectors are registered, e.g. by the restclient --metrics flag.
func Global() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// ResetGlobal discards the process-wide collectors so the next Global call
// builds fresh ones. Used by tests that run the restclient command more
// than once in a process.
func ResetGlobal() {
	defaultRegistry = nil
	defaultOnce = sync.Once{}
}
