package factory

import (
	"time"

	"github.com/openshift/restclient-go/pkg/client"
	"github.com/openshift/restclient-go/pkg/logging"
	"github.com/openshift/restclient-go/pkg/metrics"
	"github.com/openshift/restclient-go/pkg/model"
	"github.com/openshift/restclient-go/pkg/typemapper"
	"k8s.io/klog/v2"
)

// Stub builds an empty resource of kind carrying only name and, when not
// empty, namespace. The version is the one the connected server serves
// kind in. It fails with a ResourceFactoryError when no endpoint serves
// kind or the client cannot resolve endpoints.
func (f *ResourceFactory) Stub(kind, name, namespace string) (model.Resource, error) {
	return f.StubKind(kind, &name, &namespace)
}

// StubKind is Stub with an optional namespace. The name is required.
func (f *ResourceFactory) StubKind(kind string, name, namespace *string) (res model.Resource, err error) {
	start := time.Now()
	defer func() { f.observe(metrics.OpStub, start, err) }()

	if name == nil || *name == "" {
		return nil, NewResourceFactoryError(kind, "a stub requires a name", nil)
	}

	version, err := f.stubVersion(kind)
	if err != nil {
		return nil, err
	}
	res, err = f.dispatch(newDocument(), version, kind)
	if err != nil {
		return nil, err
	}

	res.SetName(*name)
	if namespace != nil && *namespace != "" {
		res.SetNamespace(*namespace)
	}
	klog.V(logging.LevelDebug).InfoS("Created stub",
		"kind", kind,
		"version", version,
		"name", res.Name(),
		"namespace", res.Namespace(),
	)
	return res, nil
}

// stubVersion returns the apiVersion the server prefers for kind.
func (f *ResourceFactory) stubVersion(kind string) (string, error) {
	mapper := client.TypeMapperFor(f.Client())
	if mapper == nil {
		return "", NewResourceFactoryError(kind, "no type mapper to resolve its version", client.ErrMissingClient)
	}
	ep, err := mapper.EndpointFor("", kind)
	if err != nil {
		if typemapper.IsEndpointNotFound(err) {
			return "", NewResourceFactoryError(kind, "the server does not serve it", err)
		}
		return "", NewResourceFactoryError(kind, "resolving its endpoint", err)
	}
	if ep == nil {
		return "", NewResourceFactoryError(kind, "the server does not serve it", typemapper.NewEndpointNotFoundError("", kind))
	}
	return ep.APIVersion(), nil
}
