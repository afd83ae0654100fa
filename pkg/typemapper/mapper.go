// Package typemapper resolves a (version, kind) pair to the endpoint that
// serves it on the connected server.
package typemapper

import (
	"errors"
	"fmt"

	"github.com/openshift/restclient-go/pkg/api"
)

// Endpoint prefixes
const (
	// KubeAPI is the prefix of the Kubernetes core group.
	KubeAPI = "api"
	// OpenShiftAPI is the prefix of the legacy OpenShift group.
	OpenShiftAPI = "oapi"
	// GroupAPI is the prefix of every named API group.
	GroupAPI = "apis"
)

// ErrEndpointNotFound is returned when no endpoint serves a kind.
var ErrEndpointNotFound = errors.New("endpoint not found")

// EndpointNotFoundError wraps ErrEndpointNotFound with context
type EndpointNotFoundError struct {
	Version string
	Kind    string
}

func (e *EndpointNotFoundError) Error() string {
	if e.Version != "" {
		return fmt.Sprintf("no endpoint serves %s in version %q", e.Kind, e.Version)
	}
	return fmt.Sprintf("no endpoint serves %s", e.Kind)
}

func (e *EndpointNotFoundError) Unwrap() error {
	return ErrEndpointNotFound
}

// NewEndpointNotFoundError creates an EndpointNotFoundError
func NewEndpointNotFoundError(version, kind string) error {
	return &EndpointNotFoundError{Version: version, Kind: kind}
}

// Endpoint describes how a kind is served.
type Endpoint struct {
	// Prefix is KubeAPI, OpenShiftAPI or GroupAPI
	Prefix string

	// APIGroupName is the group (e.g. "apps"); empty for the core groups.
	// A "group/version" value is accepted and treated as the group.
	APIGroupName string

	// Version is the group version (e.g. "v1")
	Version string

	// Kind is the canonical kind (e.g. "Deployment")
	Kind string

	// Resource is the plural resource name (e.g. "deployments")
	Resource string

	// Namespaced indicates if the resource is namespace-scoped
	Namespaced bool
}

// Group returns the API group without any version suffix.
func (e Endpoint) Group() string {
	gv, err := api.ParseVersion(e.APIGroupName)
	if err != nil || gv.Group == "" {
		return e.APIGroupName
	}
	return gv.Group
}

// APIVersion returns the value a document of this endpoint carries in
// its apiVersion field.
func (e Endpoint) APIVersion() string {
	return api.QualifiedVersion(e.APIGroupName, e.Version)
}

// Extension returns the group a type registration for this endpoint is
// keyed by. Core endpoints have none.
func (e Endpoint) Extension() string {
	switch e.Prefix {
	case KubeAPI, OpenShiftAPI:
		return ""
	default:
		return e.Group()
	}
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s/%s/%s", e.Prefix, e.APIVersion(), e.Kind)
}

// Mapper resolves the endpoint serving a kind.
type Mapper interface {
	// EndpointFor returns the endpoint serving kind at version. An empty
	// version selects the version the server prefers. It fails with an
	// error wrapping ErrEndpointNotFound when nothing serves the kind.
	EndpointFor(version, kind string) (*Endpoint, error)
}

// IsEndpointNotFound reports whether err means no endpoint was found.
func IsEndpointNotFound(err error) bool {
	return errors.Is(err, ErrEndpointNotFound)
}
