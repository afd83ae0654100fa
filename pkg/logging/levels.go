package logging

// Log levels used throughout the client
// Based on klog verbosity levels
const (
	// LevelError (0) - Always logged, for errors only
	// Use: klog.ErrorS(err, "message")
	LevelError = 0

	// LevelWarning (1) - Warnings and degraded outcomes
	// Use: klog.V(1).InfoS("message")
	// Examples: partial discovery, unknown kind materialized as a generic resource
	LevelWarning = 1

	// LevelInfo (2) - General information about operations
	// Use: klog.V(2).InfoS("message")
	// Examples: discovery loaded, client swapped on a factory
	LevelInfo = 2

	// LevelDebug (4) - Detailed debugging information
	// Use: klog.V(4).InfoS("message")
	// Examples: individual resource creations and how their type was resolved
	LevelDebug = 4

	// LevelTrace (6) - Very detailed trace information
	// Use: klog.V(6).InfoS("message")
	// Examples: every list item dispatched, property key lookups
	LevelTrace = 6
)

// Guidelines:
//
// Use klog.ErrorS() for errors (always logged):
//   klog.ErrorS(err, "Failed to create resource", "kind", "Pod", "version", version)
//
// Use klog.V(2).InfoS() for general info:
//   klog.V(2).InfoS("Loaded API discovery", "groups", n)
//
// Use klog.V(4).InfoS() for debug/operation details:
//   klog.V(4).InfoS("Created resource", "kind", kind, "resolution", "builtin")
//
// Use klog.V(6).InfoS() for trace/verbose debugging:
//   klog.V(6).InfoS("Dispatching list item", "index", i, "kind", kind)
