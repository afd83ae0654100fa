package model

import (
	"github.com/openshift/restclient-go/pkg/client"
	"github.com/openshift/restclient-go/pkg/properties"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Generic is the fallback for kinds the client has no type for. Its
// fields are reachable through the Base accessors and the document.
type Generic struct {
	Base
}

// NewGeneric implements Constructor for the fallback type.
func NewGeneric(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	b, err := newBase(doc, c, keys)
	if err != nil {
		return nil, err
	}
	return &Generic{Base: b}, nil
}
