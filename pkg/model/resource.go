// Package model holds the resource types the factory materializes: one
// type per well-known kind, the Generic fallback and the List collection.
// Every type wraps its structured document and mutates it in place.
package model

import (
	"encoding/json"
	"errors"

	"github.com/openshift/restclient-go/pkg/api"
	"github.com/openshift/restclient-go/pkg/client"
	"github.com/openshift/restclient-go/pkg/properties"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// ErrNilDocument is returned when a resource is constructed without a
// document.
var ErrNilDocument = errors.New("document is required")

// Resource is the capability set shared by every materialized resource.
type Resource interface {
	Kind() string
	APIVersion() string

	Name() string
	SetName(name string)
	Namespace() string
	SetNamespace(namespace string)

	Labels() map[string]string
	SetLabels(labels map[string]string)
	Annotation(key string) string
	SetAnnotation(key, value string)
	ResourceVersion() string
	UID() string
	CreationTimestamp() string

	// Client returns the handle to the connection the resource belongs to.
	Client() client.Client
	// PropertyKeys returns the field paths the resource was built with.
	PropertyKeys() properties.KeyMap
	// Document returns the underlying document. Mutating it mutates
	// the resource.
	Document() *unstructured.Unstructured
	// JSON encodes the underlying document.
	JSON() ([]byte, error)
}

// Constructor builds a resource around doc.
type Constructor func(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error)

// fallbackPaths are used when a key map does not carry a common field.
var fallbackPaths = properties.KeyMap{
	properties.Name:              {"metadata", "name"},
	properties.Namespace:         {"metadata", "namespace"},
	properties.Labels:            {"metadata", "labels"},
	properties.Annotations:       {"metadata", "annotations"},
	properties.ResourceVersion:   {"metadata", "resourceVersion"},
	properties.UID:               {"metadata", "uid"},
	properties.CreationTimestamp: {"metadata", "creationTimestamp"},
	properties.Items:             {api.FieldItems},
}

// Base implements Resource over a document and a property-key map. It is
// embedded by every concrete type.
type Base struct {
	doc    *unstructured.Unstructured
	client client.Client
	keys   properties.KeyMap
}

var _ Resource = (*Base)(nil)

func newBase(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Base, error) {
	if doc == nil {
		return Base{}, ErrNilDocument
	}
	if doc.Object == nil {
		doc.Object = map[string]interface{}{}
	}
	if keys == nil {
		keys = properties.KeyMap{}
	}
	return Base{doc: doc, client: c, keys: keys}, nil
}

// Kind implements Resource.
func (b *Base) Kind() string { return b.doc.GetKind() }

// APIVersion implements Resource.
func (b *Base) APIVersion() string { return b.doc.GetAPIVersion() }

// Name implements Resource.
func (b *Base) Name() string { return b.StringField(properties.Name) }

// SetName implements Resource.
func (b *Base) SetName(name string) { b.SetString(properties.Name, name) }

// Namespace implements Resource.
func (b *Base) Namespace() string { return b.StringField(properties.Namespace) }

// SetNamespace implements Resource. An empty namespace removes the field.
func (b *Base) SetNamespace(namespace string) {
	if namespace == "" {
		b.Unset(properties.Namespace)
		return
	}
	b.SetString(properties.Namespace, namespace)
}

// Labels implements Resource.
func (b *Base) Labels() map[string]string { return b.StringMapField(properties.Labels) }

// SetLabels implements Resource.
func (b *Base) SetLabels(labels map[string]string) { b.SetStringMap(properties.Labels, labels) }

// Annotation implements Resource.
func (b *Base) Annotation(key string) string {
	return b.StringMapField(properties.Annotations)[key]
}

// SetAnnotation implements Resource.
func (b *Base) SetAnnotation(key, value string) {
	annotations := b.StringMapField(properties.Annotations)
	if annotations == nil {
		annotations = map[string]string{}
	}
	annotations[key] = value
	b.SetStringMap(properties.Annotations, annotations)
}

// ResourceVersion implements Resource.
func (b *Base) ResourceVersion() string { return b.StringField(properties.ResourceVersion) }

// UID implements Resource.
func (b *Base) UID() string { return b.StringField(properties.UID) }

// CreationTimestamp implements Resource.
func (b *Base) CreationTimestamp() string { return b.StringField(properties.CreationTimestamp) }

// Client implements Resource.
func (b *Base) Client() client.Client { return b.client }

// PropertyKeys implements Resource.
func (b *Base) PropertyKeys() properties.KeyMap { return b.keys }

// Document implements Resource.
func (b *Base) Document() *unstructured.Unstructured { return b.doc }

// JSON implements Resource.
func (b *Base) JSON() ([]byte, error) { return json.Marshal(b.doc.Object) }

// path resolves a logical field name to its document path.
func (b *Base) path(key string) ([]string, bool) {
	if p, ok := b.keys.Path(key); ok {
		return p, true
	}
	return fallbackPaths.Path(key)
}

// Field returns the raw value stored under key.
func (b *Base) Field(key string) (interface{}, bool) {
	p, ok := b.path(key)
	if !ok {
		return nil, false
	}
	v, found, err := unstructured.NestedFieldNoCopy(b.doc.Object, p...)
	if err != nil || !found {
		return nil, false
	}
	return v, true
}

// StringField returns the string stored under key, or "".
func (b *Base) StringField(key string) string {
	v, ok := b.Field(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Int64Field returns the integer stored under key, or 0.
func (b *Base) Int64Field(key string) int64 {
	v, ok := b.Field(key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

// BoolField returns the boolean stored under key, or false.
func (b *Base) BoolField(key string) bool {
	v, ok := b.Field(key)
	if !ok {
		return false
	}
	t, _ := v.(bool)
	return t
}

// StringMapField returns the string map stored under key, or nil.
func (b *Base) StringMapField(key string) map[string]string {
	v, ok := b.Field(key)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, val := range m {
		if s, ok := val.(string); ok {
			out[k] = s
		}
	}
	return out
}

// SliceField returns the list stored under key, or nil.
func (b *Base) SliceField(key string) []interface{} {
	v, ok := b.Field(key)
	if !ok {
		return nil
	}
	s, _ := v.([]interface{})
	return s
}

// ObjectsField returns the objects in the list stored under key.
func (b *Base) ObjectsField(key string) []map[string]interface{} {
	var out []map[string]interface{}
	for _, item := range b.SliceField(key) {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// SetValue stores value under key. Unknown keys are ignored.
func (b *Base) SetValue(key string, value interface{}) {
	p, ok := b.path(key)
	if !ok {
		return
	}
	_ = unstructured.SetNestedField(b.doc.Object, value, p...)
}

// SetString stores s under key.
func (b *Base) SetString(key, s string) { b.SetValue(key, s) }

// SetInt64 stores n under key.
func (b *Base) SetInt64(key string, n int64) { b.SetValue(key, n) }

// SetStringMap stores m under key. A nil map removes the field.
func (b *Base) SetStringMap(key string, m map[string]string) {
	if m == nil {
		b.Unset(key)
		return
	}
	p, ok := b.path(key)
	if !ok {
		return
	}
	_ = unstructured.SetNestedStringMap(b.doc.Object, m, p...)
}

// Unset removes the field stored under key.
func (b *Base) Unset(key string) {
	p, ok := b.path(key)
	if !ok {
		return
	}
	unstructured.RemoveNestedField(b.doc.Object, p...)
}
