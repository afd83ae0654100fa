// Package properties maps a (version, kind) pair to the document paths
// where a resource's logical fields are stored.
package properties

import (
	"sort"
	"strings"
	"sync"

	"github.com/openshift/restclient-go/pkg/api"
)

// Logical field names shared by every kind.
const (
	Name              = "name"
	Namespace         = "namespace"
	Labels            = "labels"
	Annotations       = "annotations"
	ResourceVersion   = "resourceVersion"
	UID               = "uid"
	CreationTimestamp = "creationTimestamp"
	Items             = "items"
)

// KeyMap maps a logical field name to its path in the document.
type KeyMap map[string][]string

// Path returns the document path for key, if one is known.
func (m KeyMap) Path(key string) ([]string, bool) {
	p, ok := m[key]
	return p, ok
}

// Keys returns the sorted logical field names.
func (m KeyMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// legacyVersions were served by OpenShift before v1 and are no longer
// understood by the client.
var legacyVersions = []string{"v1beta1", "v1beta3"}

// Registry resolves the KeyMap for a (version, kind) pair.
type Registry interface {
	// Get returns the key map for kind served at version. It fails with
	// an api.UnsupportedVersionError when the version cannot be handled.
	Get(version, kind string) (KeyMap, error)
}

// Default is the registry of field paths for the kinds shipped with the
// client. Kinds without specific entries get the common metadata paths.
type Default struct {
	mu          sync.RWMutex
	kinds       map[string]KeyMap
	unsupported map[string]bool
}

var _ Registry = (*Default)(nil)

// NewDefault creates the registry with the built-in kind paths.
func NewDefault() *Default {
	d := &Default{
		kinds:       make(map[string]KeyMap),
		unsupported: make(map[string]bool),
	}
	for _, v := range legacyVersions {
		d.unsupported[v] = true
	}
	for kind, keys := range builtinKeys {
		d.kinds[kind] = keys
	}
	return d
}

// Register adds or replaces the kind specific paths for kind.
func (d *Default) Register(kind string, keys KeyMap) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.kinds[kind] = keys
}

// Get implements Registry.
func (d *Default) Get(version, kind string) (KeyMap, error) {
	gv, err := api.ParseVersion(version)
	if err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.unsupported[gv.Version] && isLegacyOpenShiftKind(kind) {
		return nil, api.NewUnsupportedVersionError(version, kind)
	}

	keys := commonKeys()
	if api.IsListKind(kind) {
		keys[Items] = []string{api.FieldItems}
		keys[ResourceVersion] = []string{"metadata", "resourceVersion"}
		return keys, nil
	}
	for k, p := range d.kinds[kind] {
		keys[k] = p
	}
	return keys, nil
}

func commonKeys() KeyMap {
	return KeyMap{
		Name:              {"metadata", "name"},
		Namespace:         {"metadata", "namespace"},
		Labels:            {"metadata", "labels"},
		Annotations:       {"metadata", "annotations"},
		ResourceVersion:   {"metadata", "resourceVersion"},
		UID:               {"metadata", "uid"},
		CreationTimestamp: {"metadata", "creationTimestamp"},
	}
}

// isLegacyOpenShiftKind reports whether kind was served by the OpenShift
// API before v1. Kubernetes kinds have their own beta versions (for
// example extensions/v1beta1) that remain usable.
func isLegacyOpenShiftKind(kind string) bool {
	_, ok := openShiftKinds[strings.TrimSuffix(kind, api.ListSuffix)]
	return ok
}

var openShiftKinds = map[string]struct{}{
	api.KindBuild:                    {},
	api.KindBuildConfig:              {},
	api.KindBuildRequest:             {},
	api.KindDeploymentConfig:         {},
	api.KindImageStream:              {},
	api.KindImageStreamImport:        {},
	api.KindOAuthAccessToken:         {},
	api.KindOAuthAuthorizeToken:      {},
	api.KindOAuthClient:              {},
	api.KindOAuthClientAuthorization: {},
	api.KindPolicy:                   {},
	api.KindPolicyBinding:            {},
	api.KindProject:                  {},
	api.KindProjectRequest:           {},
	api.KindRole:                     {},
	api.KindRoleBinding:              {},
	api.KindRoute:                    {},
	api.KindTemplate:                 {},
	api.KindUser:                     {},
}
