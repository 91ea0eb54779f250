package envconf

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPrefix is returned by New when the prefix is not a valid identifier.
var ErrInvalidPrefix = errors.New("invalid prefix")

// ErrInvalidName is returned when a field name is not a valid identifier.
var ErrInvalidName = errors.New("invalid name")

// ErrDuplicateName is returned when a field or computed name is already in use.
var ErrDuplicateName = errors.New("name already specified")

// ErrMissingKey is returned when a required key is absent and no default was supplied.
var ErrMissingKey = errors.New("not available in environment")

// ErrNotResolved is returned when values are read before Resolve completed.
var ErrNotResolved = errors.New("configuration not resolved")

// ErrUnknownField is returned when reading a name that was never registered nor computed.
var ErrUnknownField = errors.New("unknown field")

// ErrAlreadyResolved is returned by Register once the registry has been resolved.
var ErrAlreadyResolved = errors.New("configuration already resolved")

// ErrTypeMismatch is returned by Get when the stored value has a different type.
var ErrTypeMismatch = errors.New("type mismatch")

// TransformError is returned by Resolve when a transform rejects a present value.
type TransformError struct {
	Key string
	Raw string
	Err error
}

// Error implements the error interface.
func (e *TransformError) Error() string {
	return fmt.Sprintf("transform %s value %q: %v", e.Key, e.Raw, e.Err)
}

// Unwrap returns the error produced by the transform.
func (e *TransformError) Unwrap() error {
	return e.Err
}

// MissingKeysError lists every key that was absent during a resolution pass.
// It matches ErrMissingKey with errors.Is.
type MissingKeysError struct {
	Keys []string
}

// Error implements the error interface.
func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("%s %s", strings.Join(e.Keys, ", "), ErrMissingKey)
}

// Unwrap returns ErrMissingKey.
func (e *MissingKeysError) Unwrap() error {
	return ErrMissingKey
}
