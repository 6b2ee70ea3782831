package error

import (
	"errors"
	"fmt"
)

// Store errors shared by every repository. Use errors.Is against these
// sentinels or KindOf to classify a failure.
var (
	// ErrRecordNotFound is returned when a lookup by identifier matches no row.
	ErrRecordNotFound = errors.New("record not found")

	// ErrStoreUnavailable is returned when the store cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrConstraintViolation is returned when a write breaks a store constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrConcurrentUpdate is returned when a record changed between read and write.
	ErrConcurrentUpdate = errors.New("concurrent update")
)

// StoreErrorKind classifies store failures.
type StoreErrorKind string

const (
	StoreErrorNotFound            StoreErrorKind = "not_found"
	StoreErrorConnection          StoreErrorKind = "connection"
	StoreErrorConstraintViolation StoreErrorKind = "constraint_violation"
	StoreErrorConflict            StoreErrorKind = "conflict"
	StoreErrorUnknown             StoreErrorKind = "unknown"
)

// StoreError wraps a store failure with its kind and the operation that failed.
type StoreError struct {
	Kind StoreErrorKind
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel that corresponds to the error kind.
func (e *StoreError) Is(target error) bool {
	switch e.Kind {
	case StoreErrorNotFound:
		return target == ErrRecordNotFound
	case StoreErrorConnection:
		return target == ErrStoreUnavailable
	case StoreErrorConstraintViolation:
		return target == ErrConstraintViolation
	case StoreErrorConflict:
		return target == ErrConcurrentUpdate
	default:
		return false
	}
}

// NewStoreError creates a new StoreError.
func NewStoreError(kind StoreErrorKind, op string, err error) *StoreError {
	return &StoreError{
		Kind: kind,
		Op:   op,
		Err:  err,
	}
}

// KindOf returns the store error kind found in err's chain, or
// StoreErrorUnknown when err carries no StoreError.
func KindOf(err error) StoreErrorKind {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Kind
	}
	return StoreErrorUnknown
}
