package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(`{"apiVersion":"v1","kind":"Pod","metadata":{"name":"web"},"spec":{"priority":3}}`))
	require.NoError(t, err)

	assert.Equal(t, "Pod", doc.GetKind())
	assert.Equal(t, "web", doc.GetName())

	priority, found, err := unstructured.NestedInt64(doc.Object, "spec", "priority")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(3), priority)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"array", `[{"kind":"Pod"}]`},
		{"scalar", `"Pod"`},
		{"truncated", `{"kind":"Pod"`},
		{"not json", `kind: Pod`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestTypeFields(t *testing.T) {
	doc := &unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "v1",
		"kind":       "Service",
	}}
	version, kind, err := TypeFields(doc)
	require.NoError(t, err)
	assert.Equal(t, "v1", version)
	assert.Equal(t, "Service", kind)

	tests := []struct {
		name string
		obj  map[string]interface{}
	}{
		{"missing kind", map[string]interface{}{"apiVersion": "v1"}},
		{"missing apiVersion", map[string]interface{}{"kind": "Pod"}},
		{"kind not a string", map[string]interface{}{"apiVersion": "v1", "kind": int64(3)}},
		{"empty kind", map[string]interface{}{"apiVersion": "v1", "kind": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := TypeFields(&unstructured.Unstructured{Object: tt.obj})
			assert.Error(t, err)
		})
	}
}

func TestStamp(t *testing.T) {
	doc := &unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "v1beta3",
		"kind":       "Other",
	}}
	Stamp(doc, "v1", "Pod")
	assert.Equal(t, "v1", doc.GetAPIVersion())
	assert.Equal(t, "Pod", doc.GetKind())

	empty := &unstructured.Unstructured{}
	Stamp(empty, "v1", "Pod")
	assert.Equal(t, "Pod", empty.GetKind())
}

func TestDescribe(t *testing.T) {
	doc := &unstructured.Unstructured{Object: map[string]interface{}{"kind": "Pod"}}
	assert.Equal(t, `{"kind":"Pod"}`, Describe(doc, 0))
	assert.Equal(t, `{"kin...`, Describe(doc, 5))
	assert.Equal(t, "<nil>", Describe(nil, 0))
}
