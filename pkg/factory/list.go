package factory

import (
	"fmt"
	"time"

	"github.com/openshift/restclient-go/pkg/api"
	"github.com/openshift/restclient-go/pkg/document"
	"github.com/openshift/restclient-go/pkg/logging"
	"github.com/openshift/restclient-go/pkg/metrics"
	"github.com/openshift/restclient-go/pkg/model"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/klog/v2"
)

// CreateList parses raw as a collection of kind and builds every item as
// kind in the collection's version. The collection's own kind must be the
// list form of kind, e.g. "PodList" for "Pod".
func (f *ResourceFactory) CreateList(raw []byte, kind string) (items []model.Resource, err error) {
	start := time.Now()
	defer func() { f.observe(metrics.OpCreateList, start, err) }()

	doc, err := document.Parse(raw)
	if err != nil {
		return nil, NewMalformedInputError(raw, err)
	}
	version, listKind, err := document.TypeFields(doc)
	if err != nil {
		return nil, NewMalformedInputError(raw, err)
	}
	if want := api.ListKind(kind); listKind != want {
		return nil, NewListKindMismatchError(want, listKind)
	}

	var elements []interface{}
	if doc.Object[api.FieldItems] != nil {
		elements, _, err = unstructured.NestedSlice(doc.Object, api.FieldItems)
	}
	if err != nil {
		return nil, NewResourceCreationError(version, listKind, doc, fmt.Errorf("%w: %v", model.ErrInvalidItems, err))
	}

	items = make([]model.Resource, 0, len(elements))
	for i, e := range elements {
		obj, ok := e.(map[string]interface{})
		if !ok {
			return nil, NewResourceCreationError(version, listKind, doc,
				fmt.Errorf("%w: item %d is %T, not an object", model.ErrInvalidItems, i, e))
		}
		item, err := f.dispatch(&unstructured.Unstructured{Object: obj}, version, kind)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	f.metrics.ObserveListItems(f.listLabel(listKind), len(items))
	klog.V(logging.LevelDebug).InfoS("Created list items",
		"kind", kind,
		"version", version,
		"items", len(items),
	)
	return items, nil
}
