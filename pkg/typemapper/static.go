package typemapper

import (
	"sync"

	"github.com/openshift/restclient-go/pkg/api"
)

// Static is a Mapper over a fixed set of endpoints. Endpoints registered
// first for a kind are preferred when no version is requested.
//
// Thread-safety: safe for concurrent use.
type Static struct {
	mu     sync.RWMutex
	byKind map[string][]Endpoint
}

var _ Mapper = (*Static)(nil)

// NewStatic creates a mapper serving the given endpoints.
func NewStatic(endpoints ...Endpoint) *Static {
	s := &Static{byKind: make(map[string][]Endpoint)}
	for _, e := range endpoints {
		s.Add(e)
	}
	return s
}

// Add registers an endpoint.
func (s *Static) Add(e Endpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byKind[e.Kind] = append(s.byKind[e.Kind], e)
}

// EndpointFor implements Mapper.
func (s *Static) EndpointFor(version, kind string) (*Endpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return match(s.byKind[kind], version, kind)
}

// match selects the endpoint for version from candidates, which are
// ordered by preference. The version may be bare ("v1") or group
// qualified ("apps/v1").
func match(candidates []Endpoint, version, kind string) (*Endpoint, error) {
	if len(candidates) == 0 {
		return nil, NewEndpointNotFoundError(version, kind)
	}
	if version == "" {
		e := candidates[0]
		return &e, nil
	}

	gv, err := api.ParseVersion(version)
	if err != nil {
		return nil, err
	}
	for _, e := range candidates {
		if e.Version != gv.Version {
			continue
		}
		if gv.Group == "" || gv.Group == e.Group() {
			e := e
			return &e, nil
		}
	}
	return nil, NewEndpointNotFoundError(version, kind)
}

// OpenShiftEndpoints returns the endpoints of the kinds shipped with the
// client, as served by an OpenShift 3 server.
func OpenShiftEndpoints() []Endpoint {
	core := func(kind, resource string, namespaced bool) Endpoint {
		return Endpoint{Prefix: KubeAPI, Version: "v1", Kind: kind, Resource: resource, Namespaced: namespaced}
	}
	legacy := func(kind, resource string, namespaced bool) Endpoint {
		return Endpoint{Prefix: OpenShiftAPI, Version: "v1", Kind: kind, Resource: resource, Namespaced: namespaced}
	}
	group := func(group, version, kind, resource string, namespaced bool) Endpoint {
		return Endpoint{Prefix: GroupAPI, APIGroupName: group, Version: version, Kind: kind, Resource: resource, Namespaced: namespaced}
	}

	return []Endpoint{
		core(api.KindConfigMap, "configmaps", true),
		core(api.KindEvent, "events", true),
		core(api.KindLimitRange, "limitranges", true),
		core(api.KindNamespace, "namespaces", false),
		core(api.KindPersistentVolume, "persistentvolumes", false),
		core(api.KindPersistentVolumeClaim, "persistentvolumeclaims", true),
		core(api.KindPod, "pods", true),
		core(api.KindReplicationController, "replicationcontrollers", true),
		core(api.KindResourceQuota, "resourcequotas", true),
		core(api.KindSecret, "secrets", true),
		core(api.KindService, "services", true),
		core(api.KindServiceAccount, "serviceaccounts", true),

		legacy(api.KindBuild, "builds", true),
		legacy(api.KindBuildConfig, "buildconfigs", true),
		legacy(api.KindDeploymentConfig, "deploymentconfigs", true),
		legacy(api.KindImageStream, "imagestreams", true),
		legacy(api.KindImageStreamImport, "imagestreamimports", true),
		legacy(api.KindOAuthAccessToken, "oauthaccesstokens", false),
		legacy(api.KindOAuthAuthorizeToken, "oauthauthorizetokens", false),
		legacy(api.KindOAuthClient, "oauthclients", false),
		legacy(api.KindOAuthClientAuthorization, "oauthclientauthorizations", false),
		legacy(api.KindPolicy, "policies", true),
		legacy(api.KindPolicyBinding, "policybindings", true),
		legacy(api.KindProject, "projects", false),
		legacy(api.KindProjectRequest, "projectrequests", false),
		legacy(api.KindRole, "roles", true),
		legacy(api.KindRoleBinding, "rolebindings", true),
		legacy(api.KindRoute, "routes", true),
		legacy(api.KindTemplate, "templates", true),
		legacy(api.KindUser, "users", false),

		group("apps", "v1", api.KindDeployment, "deployments", true),
		group("apps", "v1", api.KindReplicaSet, "replicasets", true),
		group("batch", "v1", api.KindJob, "jobs", true),
		group("networking.k8s.io", "v1", api.KindIngress, "ingresses", true),
		group("extensions", "v1beta1", api.KindIngress, "ingresses", true),
	}
}
