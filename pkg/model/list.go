package model

import (
	"errors"
	"fmt"

	"github.com/openshift/restclient-go/pkg/client"
	"github.com/openshift/restclient-go/pkg/properties"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// ErrInvalidItems is returned when a collection document carries items
// that are not a list of objects.
var ErrInvalidItems = errors.New("invalid list items")

// ItemDispatcher materializes the element at index of a collection. The
// element document shares storage with the collection document.
type ItemDispatcher func(index int, item *unstructured.Unstructured) (Resource, error)

// List is a collection resource: list-level metadata plus the ordered
// element resources. Elements keep the order of the document.
type List struct {
	Base
	items []Resource
}

// NewList wraps doc and materializes every element under its items path
// with dispatch.
func NewList(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap, dispatch ItemDispatcher) (*List, error) {
	b, err := newBase(doc, c, keys)
	if err != nil {
		return nil, err
	}
	l := &List{Base: b}

	raw, ok := l.Field(properties.Items)
	if !ok || raw == nil {
		return l, nil
	}
	elements, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected a list, got %T", ErrInvalidItems, raw)
	}

	l.items = make([]Resource, 0, len(elements))
	for i, e := range elements {
		obj, ok := e.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: item %d is %T, not an object", ErrInvalidItems, i, e)
		}
		item, err := dispatch(i, &unstructured.Unstructured{Object: obj})
		if err != nil {
			return nil, err
		}
		l.items = append(l.items, item)
	}
	return l, nil
}

// Items returns the element resources in document order.
func (l *List) Items() []Resource {
	out := make([]Resource, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.items)
}

// Each calls fn for every element in order and stops at the first error.
func (l *List) Each(fn func(int, Resource) error) error {
	for i, item := range l.items {
		if err := fn(i, item); err != nil {
			return err
		}
	}
	return nil
}
