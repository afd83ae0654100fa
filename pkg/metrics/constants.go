package metrics

// Metric namespaces and subsystems
const (
	// Namespace for all restclient metrics
	Namespace = "restclient"

	// Subsystems
	SubsystemFactory   = "factory"
	SubsystemDiscovery = "discovery"
)

// Factory operations
const (
	OpCreate     = "create"
	OpCreateList = "create_list"
	OpStub       = "stub"
)

// How the concrete type of a resource was resolved
const (
	ResolutionRegistry  = "registry"
	ResolutionExtension = "extension"
	ResolutionFallback  = "fallback"
	ResolutionList      = "list"
)

// KindOther labels resources and collections whose kind has no registered
// type, keeping the kind label bounded by the registry.
const KindOther = "other"

// Failure reasons
const (
	ReasonMalformedInput     = "malformed_input"
	ReasonUnsupportedVersion = "unsupported_version"
	ReasonCreation           = "creation_failure"
	ReasonFactory            = "factory_error"
	ReasonListKindMismatch   = "list_kind_mismatch"
)

// Status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusPartial = "partial"
)
