// Package document parses raw resource documents.
package document

import (
	"bytes"
	"fmt"

	"github.com/openshift/restclient-go/pkg/api"
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	utiljson "k8s.io/apimachinery/pkg/util/json"
)

// Parse decodes raw into a document. Integral numbers decode as int64.
// The top level value must be an object.
func Parse(raw []byte) (*unstructured.Unstructured, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty document")
	}
	if trimmed[0] != '{' {
		return nil, errors.Errorf("document is not an object, starts with %q", trimmed[0])
	}

	obj := map[string]interface{}{}
	if err := utiljson.Unmarshal(trimmed, &obj); err != nil {
		return nil, errors.Wrap(err, "decoding document")
	}
	return &unstructured.Unstructured{Object: obj}, nil
}

// TypeFields returns the apiVersion and kind of doc. Both must be present
// and be non-empty strings.
func TypeFields(doc *unstructured.Unstructured) (version, kind string, err error) {
	version, err = requiredString(doc, api.FieldAPIVersion)
	if err != nil {
		return "", "", err
	}
	kind, err = requiredString(doc, api.FieldKind)
	if err != nil {
		return "", "", err
	}
	return version, kind, nil
}

func requiredString(doc *unstructured.Unstructured, field string) (string, error) {
	v, ok := doc.Object[field]
	if !ok {
		return "", errors.Errorf("missing %q", field)
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Errorf("%q is %T, not a string", field, v)
	}
	if s == "" {
		return "", errors.Errorf("%q is empty", field)
	}
	return s, nil
}

// Stamp writes the type fields into doc, replacing what is there.
func Stamp(doc *unstructured.Unstructured, version, kind string) {
	if doc.Object == nil {
		doc.Object = map[string]interface{}{}
	}
	doc.Object[api.FieldAPIVersion] = version
	doc.Object[api.FieldKind] = kind
}

// Describe renders doc for error messages, truncated to limit bytes.
func Describe(doc *unstructured.Unstructured, limit int) string {
	if doc == nil {
		return "<nil>"
	}
	raw, err := utiljson.Marshal(doc.Object)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	if limit > 0 && len(raw) > limit {
		return string(raw[:limit]) + "..."
	}
	return string(raw)
}
