// Package errs contains sentinel and typed errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across store/service layers.
var (
	// ErrNotFound indicates the requested moment does not exist.
	ErrNotFound = errors.New("not found")
	// ErrVersionConflict indicates an optimistic concurrency failure on a revisioned write.
	ErrVersionConflict = errors.New("version conflict")
	// ErrUnauthorized indicates failed authentication.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAlreadyExists indicates an id that is already present in the collection.
	ErrAlreadyExists = errors.New("already exists")
	// ErrValidation indicates input that must not reach the store.
	ErrValidation = errors.New("validation")
	// ErrMalformedStore matches any *MalformedStoreError via errors.Is.
	ErrMalformedStore = errors.New("malformed store")
	// ErrProvider matches any *ProviderError via errors.Is.
	ErrProvider = errors.New("identity provider")
	// ErrUnavailable indicates a dependency that is refusing calls for now.
	ErrUnavailable = errors.New("unavailable")
)

// MalformedStoreError reports persisted text under Key that cannot be decoded.
type MalformedStoreError struct {
	Key string
	Err error
}

func (e *MalformedStoreError) Error() string {
	return fmt.Sprintf("malformed store value %q: %v", e.Key, e.Err)
}

// Unwrap returns the decoding cause.
func (e *MalformedStoreError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMalformedStore) true.
func (e *MalformedStoreError) Is(target error) bool { return target == ErrMalformedStore }

// ProviderError reports a failed identity provider call. Message is meant for users.
type ProviderError struct {
	Op      string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
}

// Unwrap returns the transport cause, if any.
func (e *ProviderError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrProvider) true.
func (e *ProviderError) Is(target error) bool { return target == ErrProvider }

// Validation wraps a human readable message into ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
