// Package factory materializes typed resources from resource documents.
//
// The concrete type of a resource is resolved in three tiers: the type
// registry by kind, then the extension table by the endpoint the client's
// type mapper reports for the kind, then the generic fallback. Collection
// kinds ("PodList", "List") become a model.List whose items are resolved
// the same way.
package factory

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/openshift/restclient-go/pkg/api"
	"github.com/openshift/restclient-go/pkg/client"
	"github.com/openshift/restclient-go/pkg/document"
	"github.com/openshift/restclient-go/pkg/logging"
	"github.com/openshift/restclient-go/pkg/metrics"
	"github.com/openshift/restclient-go/pkg/model"
	"github.com/openshift/restclient-go/pkg/properties"
	"github.com/openshift/restclient-go/pkg/registry"
	"github.com/openshift/restclient-go/pkg/typemapper"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/klog/v2"
)

// ResourceFactory builds resources for one client.
//
// Thread-safety: safe for concurrent use. SetClient affects calls that
// start after it returns.
type ResourceFactory struct {
	mu     sync.RWMutex
	client client.Client

	registry   *registry.Registry
	extensions *registry.Extensions
	properties properties.Registry
	metrics    *metrics.FactoryMetrics
}

// Option configures a ResourceFactory.
type Option func(*ResourceFactory)

// WithRegistry replaces the built-in type registry.
func WithRegistry(r *registry.Registry) Option {
	return func(f *ResourceFactory) {
		f.registry = r
	}
}

// WithExtensions replaces the built-in extension table.
func WithExtensions(e *registry.Extensions) Option {
	return func(f *ResourceFactory) {
		f.extensions = e
	}
}

// WithProperties replaces the built-in property key registry.
func WithProperties(p properties.Registry) Option {
	return func(f *ResourceFactory) {
		f.properties = p
	}
}

// WithMetrics records factory metrics in m instead of the global registry.
func WithMetrics(m *metrics.FactoryMetrics) Option {
	return func(f *ResourceFactory) {
		f.metrics = m
	}
}

// New creates a factory for c. A nil client is allowed: resources are
// built without a handle and kinds unknown to the registry fall back to
// the generic type.
func New(c client.Client, opts ...Option) *ResourceFactory {
	f := &ResourceFactory{client: c}
	for _, opt := range opts {
		opt(f)
	}
	if f.registry == nil {
		f.registry = registry.NewBuiltinRegistry()
	}
	if f.extensions == nil {
		f.extensions = registry.NewBuiltinExtensions()
	}
	if f.properties == nil {
		f.properties = properties.NewDefault()
	}
	if f.metrics == nil {
		f.metrics = metrics.Global().Factory()
	}
	return f
}

// SetClient swaps the client handed to resources built from now on.
func (f *ResourceFactory) SetClient(c client.Client) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.client = c

	host := ""
	if c != nil {
		host = c.Host()
	}
	klog.V(logging.LevelInfo).InfoS("Factory client swapped", "host", host)
}

// Client returns the current client handle.
func (f *ResourceFactory) Client() client.Client {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.client
}

// Registry returns the type registry the factory resolves kinds with.
func (f *ResourceFactory) Registry() *registry.Registry {
	return f.registry
}

// Extensions returns the extension table the factory resolves endpoints
// with.
func (f *ResourceFactory) Extensions() *registry.Extensions {
	return f.extensions
}

// Create parses raw and builds the resource it describes. It fails with a
// MalformedInputError when raw is not an object carrying string apiVersion
// and kind fields. An api.UnsupportedVersionError is returned as is.
func (f *ResourceFactory) Create(raw []byte) (res model.Resource, err error) {
	start := time.Now()
	defer func() { f.observe(metrics.OpCreate, start, err) }()

	doc, err := document.Parse(raw)
	if err != nil {
		return nil, NewMalformedInputError(raw, err)
	}
	version, kind, err := document.TypeFields(doc)
	if err != nil {
		return nil, NewMalformedInputError(raw, err)
	}
	return f.dispatch(doc, version, kind)
}

// CreateFromReader reads r to the end and builds the resource it holds.
func (f *ResourceFactory) CreateFromReader(r io.Reader) (model.Resource, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		f.metrics.RecordFailure(metrics.OpCreate, metrics.ReasonFactory)
		return nil, NewResourceFactoryError("", "reading input", err)
	}
	return f.Create(raw)
}

// CreateInstanceFrom is Create for callers that handle the result
// without the model types.
func (f *ResourceFactory) CreateInstanceFrom(raw []byte) (interface{}, error) {
	return f.Create(raw)
}

// CreateKind builds an empty resource of kind in version.
func (f *ResourceFactory) CreateKind(version, kind string) (model.Resource, error) {
	return f.CreateDocument(newDocument(), version, kind)
}

func newDocument() *unstructured.Unstructured {
	return &unstructured.Unstructured{Object: map[string]interface{}{}}
}

// CreateNamed builds an empty resource of kind in version and names it.
func (f *ResourceFactory) CreateNamed(version, kind, name string) (model.Resource, error) {
	res, err := f.CreateKind(version, kind)
	if err != nil {
		return nil, err
	}
	res.SetName(name)
	return res, nil
}

// CreateDocument builds the resource for doc, stamping version and kind
// into it first. The resource takes ownership of doc.
func (f *ResourceFactory) CreateDocument(doc *unstructured.Unstructured, version, kind string) (res model.Resource, err error) {
	start := time.Now()
	defer func() { f.observe(metrics.OpCreate, start, err) }()

	return f.dispatch(doc, version, kind)
}

// dispatch is the core of every create path.
func (f *ResourceFactory) dispatch(doc *unstructured.Unstructured, version, kind string) (model.Resource, error) {
	if doc == nil {
		return nil, NewResourceCreationError(version, kind, nil, model.ErrNilDocument)
	}
	document.Stamp(doc, version, kind)

	keys, err := f.properties.Get(version, kind)
	if err != nil {
		return nil, creationFailure(version, kind, doc, err)
	}
	c := f.Client()

	if api.IsListKind(kind) {
		list, err := model.NewList(doc, c, keys, f.itemDispatcher(version, kind))
		if err != nil {
			return nil, creationFailure(version, kind, doc, err)
		}
		label := f.listLabel(kind)
		f.metrics.RecordCreation(label, metrics.ResolutionList)
		f.metrics.ObserveListItems(label, list.Len())
		klog.V(logging.LevelDebug).InfoS("Created collection",
			"kind", kind,
			"version", version,
			"items", list.Len(),
		)
		return list, nil
	}

	ctor, resolution, err := f.resolve(c, version, kind)
	if err != nil {
		return nil, creationFailure(version, kind, doc, err)
	}
	res, err := ctor(doc, c, keys)
	if err != nil {
		return nil, creationFailure(version, kind, doc, err)
	}

	if resolution == metrics.ResolutionFallback {
		f.metrics.RecordCreation(metrics.KindOther, resolution)
	} else {
		f.metrics.RecordCreation(kind, resolution)
	}
	if resolution == metrics.ResolutionFallback {
		klog.V(logging.LevelWarning).InfoS("No type registered for kind, using generic resource",
			"kind", kind,
			"version", version,
		)
	}
	klog.V(logging.LevelDebug).InfoS("Created resource",
		"kind", kind,
		"version", version,
		"name", res.Name(),
		"resolution", resolution,
	)
	return res, nil
}

// itemDispatcher builds the elements of a collection of listKind. Items
// keep their own kind and share the collection's version. Items without
// a kind take the singular form of listKind.
func (f *ResourceFactory) itemDispatcher(version, listKind string) model.ItemDispatcher {
	return func(i int, item *unstructured.Unstructured) (model.Resource, error) {
		kind := item.GetKind()
		if kind == "" {
			kind = api.ItemKind(listKind)
		}
		if kind == "" {
			return nil, fmt.Errorf("item %d of %s has no kind", i, listKind)
		}
		klog.V(logging.LevelTrace).InfoS("Dispatching list item",
			"list", listKind,
			"index", i,
			"kind", kind,
		)
		return f.dispatch(item, version, kind)
	}
}

// resolve finds the constructor for kind and reports how it was found.
func (f *ResourceFactory) resolve(c client.Client, version, kind string) (model.Constructor, string, error) {
	if ctor, ok := f.registry.Lookup(kind); ok {
		return ctor, metrics.ResolutionRegistry, nil
	}

	if mapper := client.TypeMapperFor(c); mapper != nil {
		ep, err := mapper.EndpointFor(version, kind)
		switch {
		case err == nil && ep == nil:
		case err == nil:
			if ctor, ok := f.extensions.LookupEndpoint(ep); ok {
				return ctor, metrics.ResolutionExtension, nil
			}
			klog.V(logging.LevelTrace).InfoS("No extension type for endpoint",
				"endpoint", ep.String(),
				"key", registry.ExtensionKeyFor(ep).String(),
			)
		case typemapper.IsEndpointNotFound(err):
		default:
			return nil, "", fmt.Errorf("resolving endpoint for %s: %w", kind, err)
		}
	}

	return f.registry.Fallback(), metrics.ResolutionFallback, nil
}

// listLabel returns the metric label for a collection kind. Collections
// of kinds the factory has no type for share metrics.KindOther.
func (f *ResourceFactory) listLabel(listKind string) string {
	if listKind == api.KindList {
		return listKind
	}
	item := api.ItemKind(listKind)
	if _, ok := f.registry.Lookup(item); ok {
		return listKind
	}
	for _, key := range f.extensions.Keys() {
		if key.Kind == item {
			return listKind
		}
	}
	return metrics.KindOther
}

// creationFailure wraps err into a ResourceCreationError unless it is an
// unsupported version, which callers branch on, or already a creation
// failure raised for a collection item.
func creationFailure(version, kind string, doc *unstructured.Unstructured, err error) error {
	var created *ResourceCreationError
	if api.IsUnsupportedVersion(err) || errors.As(err, &created) {
		return err
	}
	return NewResourceCreationError(version, kind, doc, err)
}

// observe records the outcome of a top-level operation.
func (f *ResourceFactory) observe(op string, start time.Time, err error) {
	f.metrics.ObserveOperation(op, time.Since(start))
	if err == nil {
		return
	}
	f.metrics.RecordFailure(op, reason(err))
	klog.V(logging.LevelDebug).InfoS("Factory operation failed",
		"operation", op,
		"duration", time.Since(start),
		"error", err,
	)
}

func reason(err error) string {
	switch {
	case api.IsUnsupportedVersion(err):
		return metrics.ReasonUnsupportedVersion
	case IsMalformedInput(err):
		return metrics.ReasonMalformedInput
	case IsListKindMismatch(err):
		return metrics.ReasonListKindMismatch
	case IsResourceFactory(err):
		return metrics.ReasonFactory
	default:
		return metrics.ReasonCreation
	}
}
