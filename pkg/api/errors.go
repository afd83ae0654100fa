package api

import (
	"errors"
	"fmt"
)

// ErrUnsupportedVersion is returned when a version is known not to be
// servable for a kind. Callers branch on it with errors.Is and it is never
// wrapped by the factory.
var ErrUnsupportedVersion = errors.New("unsupported version")

// UnsupportedVersionError wraps ErrUnsupportedVersion with context
type UnsupportedVersionError struct {
	Version string
	Kind    string
}

func (e *UnsupportedVersionError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("version %q is not supported for kind %s", e.Version, e.Kind)
	}
	return fmt.Sprintf("version %q is not supported", e.Version)
}

func (e *UnsupportedVersionError) Unwrap() error {
	return ErrUnsupportedVersion
}

// NewUnsupportedVersionError creates an UnsupportedVersionError
func NewUnsupportedVersionError(version, kind string) error {
	return &UnsupportedVersionError{
		Version: version,
		Kind:    kind,
	}
}

// IsUnsupportedVersion reports whether err signals an unsupported version.
func IsUnsupportedVersion(err error) bool {
	return errors.Is(err, ErrUnsupportedVersion)
}
