package factory

import (
	"errors"
	"fmt"

	"github.com/openshift/restclient-go/pkg/document"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Sentinel errors for factory operations.
// Use errors.Is() to check for these errors. Unsupported versions are
// reported with api.ErrUnsupportedVersion and never wrapped.

var (
	// ErrMalformedInput is returned when input is not a resource document
	ErrMalformedInput = errors.New("malformed input")

	// ErrResourceCreation is returned when a resource cannot be built from
	// a parsed document
	ErrResourceCreation = errors.New("resource creation failed")

	// ErrResourceFactory is returned when the factory cannot determine what
	// to build, e.g. when no endpoint serves a stub's kind
	ErrResourceFactory = errors.New("resource factory error")

	// ErrListKindMismatch is returned when a collection does not hold the
	// requested kind
	ErrListKindMismatch = errors.New("list kind mismatch")
)

// inputLimit bounds how much of the offending input an error message
// carries.
const inputLimit = 512

// MalformedInputError wraps ErrMalformedInput with context
type MalformedInputError struct {
	Input []byte
	Err   error
}

func (e *MalformedInputError) Error() string {
	input := string(e.Input)
	if len(input) > inputLimit {
		input = input[:inputLimit] + "..."
	}
	return fmt.Sprintf("malformed resource document: %v: %s", e.Err, input)
}

func (e *MalformedInputError) Unwrap() []error {
	return []error{ErrMalformedInput, e.Err}
}

// NewMalformedInputError creates a MalformedInputError
func NewMalformedInputError(input []byte, err error) error {
	return &MalformedInputError{
		Input: input,
		Err:   err,
	}
}

// ResourceCreationError wraps ErrResourceCreation with context
type ResourceCreationError struct {
	Version  string
	Kind     string
	Document *unstructured.Unstructured
	Err      error
}

func (e *ResourceCreationError) Error() string {
	return fmt.Sprintf("failed to create %s in version %q: %v: %s",
		e.Kind, e.Version, e.Err, document.Describe(e.Document, inputLimit))
}

func (e *ResourceCreationError) Unwrap() []error {
	return []error{ErrResourceCreation, e.Err}
}

// NewResourceCreationError creates a ResourceCreationError
func NewResourceCreationError(version, kind string, doc *unstructured.Unstructured, err error) error {
	return &ResourceCreationError{
		Version:  version,
		Kind:     kind,
		Document: doc,
		Err:      err,
	}
}

// ResourceFactoryError wraps ErrResourceFactory with context
type ResourceFactoryError struct {
	Kind   string
	Reason string
	Err    error
}

func (e *ResourceFactoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot build %s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot build %s: %s", e.Kind, e.Reason)
}

func (e *ResourceFactoryError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrResourceFactory}
	}
	return []error{ErrResourceFactory, e.Err}
}

// NewResourceFactoryError creates a ResourceFactoryError
func NewResourceFactoryError(kind, reason string, err error) error {
	return &ResourceFactoryError{
		Kind:   kind,
		Reason: reason,
		Err:    err,
	}
}

// ListKindMismatchError wraps ErrListKindMismatch with context
type ListKindMismatchError struct {
	Expected string
	Actual   string
}

func (e *ListKindMismatchError) Error() string {
	return fmt.Sprintf("expected a %s, got %s", e.Expected, e.Actual)
}

func (e *ListKindMismatchError) Unwrap() error {
	return ErrListKindMismatch
}

// NewListKindMismatchError creates a ListKindMismatchError
func NewListKindMismatchError(expected, actual string) error {
	return &ListKindMismatchError{
		Expected: expected,
		Actual:   actual,
	}
}

// IsMalformedInput reports whether err is a MalformedInputError.
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

// IsResourceCreation reports whether err is a ResourceCreationError.
func IsResourceCreation(err error) bool {
	return errors.Is(err, ErrResourceCreation)
}

// IsResourceFactory reports whether err is a ResourceFactoryError.
func IsResourceFactory(err error) bool {
	return errors.Is(err, ErrResourceFactory)
}

// IsListKindMismatch reports whether err is a ListKindMismatchError.
func IsListKindMismatch(err error) bool {
	return errors.Is(err, ErrListKindMismatch)
}
