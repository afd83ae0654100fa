// Package registry holds the resource types the factory can materialize,
// keyed by kind.
package registry

import (
	"fmt"
	"sort"

	"github.com/openshift/restclient-go/pkg/api"
	"github.com/openshift/restclient-go/pkg/model"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
)

// Definition describes one registered kind.
type Definition struct {
	// Kind is the singular kind, e.g. "Pod"
	Kind string

	// Group is the API group the kind belongs to; empty for core kinds
	Group string

	// New builds the concrete resource
	New model.Constructor
}

// Registry maps each kind to exactly one constructor. It is immutable once
// built and safe for concurrent use.
type Registry struct {
	defs     map[string]Definition
	fallback model.Constructor
}

// Builder accumulates definitions for a Registry.
type Builder struct {
	defs     []Definition
	fallback model.Constructor
}

// NewBuilder creates a builder whose fallback is model.NewGeneric.
func NewBuilder() *Builder {
	return &Builder{fallback: model.NewGeneric}
}

// Register adds definitions to the builder.
func (b *Builder) Register(defs ...Definition) *Builder {
	b.defs = append(b.defs, defs...)
	return b
}

// WithFallback replaces the constructor used for unknown kinds.
func (b *Builder) WithFallback(ctor model.Constructor) *Builder {
	b.fallback = ctor
	return b
}

// Build validates the definitions and returns the registry. Every invalid
// or duplicate definition is reported in the returned aggregate.
func (b *Builder) Build() (*Registry, error) {
	var errs []error
	defs := make(map[string]Definition, len(b.defs))
	for i, def := range b.defs {
		switch {
		case def.Kind == "":
			errs = append(errs, fmt.Errorf("definition %d: kind is required", i))
			continue
		case api.IsListKind(def.Kind):
			errs = append(errs, fmt.Errorf("kind %s: collection kinds are handled by the factory", def.Kind))
			continue
		case def.New == nil:
			errs = append(errs, fmt.Errorf("kind %s: constructor is required", def.Kind))
			continue
		}
		if _, dup := defs[def.Kind]; dup {
			errs = append(errs, fmt.Errorf("kind %s: registered more than once", def.Kind))
			continue
		}
		defs[def.Kind] = def
	}
	if b.fallback == nil {
		errs = append(errs, fmt.Errorf("fallback constructor is required"))
	}
	if len(errs) > 0 {
		return nil, utilerrors.NewAggregate(errs)
	}
	return &Registry{defs: defs, fallback: b.fallback}, nil
}

// NewBuiltinRegistry returns the registry of every kind shipped with the
// client, with model.NewGeneric as the fallback.
func NewBuiltinRegistry() *Registry {
	r, err := NewBuilder().Register(builtinDefinitions()...).Build()
	utilruntime.Must(err)
	return r
}

// Lookup returns the constructor registered for kind.
func (r *Registry) Lookup(kind string) (model.Constructor, bool) {
	def, ok := r.defs[kind]
	if !ok {
		return nil, false
	}
	return def.New, true
}

// Definition returns the definition registered for kind.
func (r *Registry) Definition(kind string) (Definition, bool) {
	def, ok := r.defs[kind]
	return def, ok
}

// Fallback returns the constructor for kinds nothing else resolves.
func (r *Registry) Fallback() model.Constructor {
	return r.fallback
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.defs))
	for k := range r.defs {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.defs)
}
