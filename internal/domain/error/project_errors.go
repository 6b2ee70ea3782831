// Package error defines domain-specific errors for the Estate Ledger application.
package error

import "errors"

// Project domain errors.
var (
	// ErrProjectNotFound is returned when a project is not found in the system.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectNameRequired is returned when a project has no name.
	ErrProjectNameRequired = errors.New("project name is required")

	// ErrInvalidProjectStatus is returned when the project status is unknown.
	ErrInvalidProjectStatus = errors.New("invalid project status")

	// ErrInvalidUnitCount is returned when an apartments or shops count is negative.
	ErrInvalidUnitCount = errors.New("invalid unit count")
)

// ProjectErrorCode defines error codes for project errors.
// Format: PRJ-XXYYYY where XX is category and YYYY is specific error.
type ProjectErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProjectNotFound      ProjectErrorCode = "PRJ-010001"
	ErrCodeProjectNameRequired  ProjectErrorCode = "PRJ-010002"
	ErrCodeInvalidProjectStatus ProjectErrorCode = "PRJ-010003"
	ErrCodeInvalidUnitCount     ProjectErrorCode = "PRJ-010004"
	ErrCodeMissingProjectFields ProjectErrorCode = "PRJ-010005"
	ErrCodeInvalidProjectID     ProjectErrorCode = "PRJ-010006"
)

// ProjectError represents a project error with code and message.
type ProjectError struct {
	Code    ProjectErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProjectError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProjectError) Unwrap() error {
	return e.Err
}

// NewProjectError creates a new ProjectError with the given code and message.
func NewProjectError(code ProjectErrorCode, message string, err error) *ProjectError {
	return &ProjectError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
