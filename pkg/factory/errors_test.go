package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

func TestErrorTypes(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "malformed input",
			err:      NewMalformedInputError([]byte(`{"kind":`), cause),
			sentinel: ErrMalformedInput,
			message:  `malformed resource document: cause: {"kind":`,
		},
		{
			name: "resource creation",
			err: NewResourceCreationError("v1", "Pod",
				&unstructured.Unstructured{Object: map[string]interface{}{"kind": "Pod"}}, cause),
			sentinel: ErrResourceCreation,
			message:  `failed to create Pod in version "v1": cause: {"kind":"Pod"}`,
		},
		{
			name:     "resource factory",
			err:      NewResourceFactoryError("Widget", "the server does not serve it", cause),
			sentinel: ErrResourceFactory,
			message:  "cannot build Widget: the server does not serve it: cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.ErrorIs(t, tt.err, cause)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestErrorsWithoutCause(t *testing.T) {
	err := NewResourceFactoryError("Pod", "a stub requires a name", nil)
	assert.True(t, IsResourceFactory(err))
	assert.Equal(t, "cannot build Pod: a stub requires a name", err.Error())

	err = NewListKindMismatchError("PodList", "ServiceList")
	assert.True(t, IsListKindMismatch(err))
	assert.Equal(t, "expected a PodList, got ServiceList", err.Error())

	err = NewResourceCreationError("v1", "Pod", nil, errors.New("boom"))
	assert.Contains(t, err.Error(), "<nil>")
}
