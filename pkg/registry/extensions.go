package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/openshift/restclient-go/pkg/api"
	"github.com/openshift/restclient-go/pkg/model"
	"github.com/openshift/restclient-go/pkg/typemapper"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
)

// ExtensionKey identifies a type contributed by an API group.
type ExtensionKey struct {
	Prefix string
	Group  string
	Kind   string
}

func (k ExtensionKey) String() string {
	if k.Group == "" {
		return k.Prefix + "/" + k.Kind
	}
	return k.Prefix + "/" + k.Group + "/" + k.Kind
}

// ExtensionKeyFor derives the key an endpoint resolves through.
func ExtensionKeyFor(ep *typemapper.Endpoint) ExtensionKey {
	return ExtensionKey{Prefix: ep.Prefix, Group: ep.Extension(), Kind: ep.Kind}
}

// Extensions is the table of types registered by API groups. Unlike the
// Registry it may grow at any time and is safe for concurrent use.
type Extensions struct {
	mu    sync.RWMutex
	types map[ExtensionKey]model.Constructor
}

// NewExtensions creates an empty table.
func NewExtensions() *Extensions {
	return &Extensions{types: make(map[ExtensionKey]model.Constructor)}
}

// NewBuiltinExtensions returns a table holding the extension group kinds
// shipped with the client.
func NewBuiltinExtensions() *Extensions {
	e := NewExtensions()
	for _, x := range []struct {
		group string
		kind  string
		ctor  model.Constructor
	}{
		{"apps", api.KindDeployment, model.NewDeployment},
		{"apps", api.KindReplicaSet, model.NewReplicaSet},
		{"batch", api.KindJob, model.NewJob},
		{"extensions", api.KindIngress, model.NewIngress},
		{"networking.k8s.io", api.KindIngress, model.NewIngress},
	} {
		utilruntime.Must(e.Register(typemapper.GroupAPI, x.group, x.kind, x.ctor))
	}
	return e
}

// Register adds the constructor for kind served under prefix and group.
// Registering a key twice is an error.
func (e *Extensions) Register(prefix, group, kind string, ctor model.Constructor) error {
	if prefix == "" || kind == "" || ctor == nil {
		return fmt.Errorf("extension %s/%s/%s: prefix, kind and constructor are required", prefix, group, kind)
	}
	key := ExtensionKey{Prefix: prefix, Group: group, Kind: kind}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, dup := e.types[key]; dup {
		return fmt.Errorf("extension %s: registered more than once", key)
	}
	e.types[key] = ctor
	return nil
}

// Lookup returns the constructor registered for key.
func (e *Extensions) Lookup(key ExtensionKey) (model.Constructor, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ctor, ok := e.types[key]
	return ctor, ok
}

// LookupEndpoint returns the constructor for the type an endpoint serves.
func (e *Extensions) LookupEndpoint(ep *typemapper.Endpoint) (model.Constructor, bool) {
	if ep == nil {
		return nil, false
	}
	return e.Lookup(ExtensionKeyFor(ep))
}

// Keys returns the registered keys in sorted order.
func (e *Extensions) Keys() []ExtensionKey {
	e.mu.RLock()
	keys := make([]ExtensionKey, 0, len(e.types))
	for k := range e.types {
		keys = append(keys, k)
	}
	e.mu.RUnlock()
	sort.Slice(keys, func(i, j int) bool {
		return strings.Compare(keys[i].String(), keys[j].String()) < 0
	})
	return keys
}
