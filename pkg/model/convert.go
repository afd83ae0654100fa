package model

import (
	"fmt"

	"github.com/openshift/restclient-go/pkg/client"
	"github.com/openshift/restclient-go/pkg/properties"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
)

// build wraps doc in the Base and hands it to wrap.
func build(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap, wrap func(Base) Resource) (Resource, error) {
	b, err := newBase(doc, c, keys)
	if err != nil {
		return nil, err
	}
	return wrap(b), nil
}

// convert decodes the document into a typed API object.
func (b *Base) convert(into interface{}) error {
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(b.doc.Object, into); err != nil {
		return fmt.Errorf("failed to convert %s %q: %w", b.Kind(), b.Name(), err)
	}
	return nil
}

// stringList returns the string elements of the list stored under key.
func (b *Base) stringList(key string) []string {
	var out []string
	for _, v := range b.SliceField(key) {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
