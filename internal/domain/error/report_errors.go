package error

import "errors"

// Report domain errors.
var (
	// ErrReportProjectNotFound is returned when a report targets a missing project.
	ErrReportProjectNotFound = errors.New("report project not found")

	// ErrPortfolioLoadFailed is returned when the portfolio snapshot cannot be loaded.
	ErrPortfolioLoadFailed = errors.New("failed to load portfolio")

	// ErrNotificationsDisabled is returned when no email provider or operator address is configured.
	ErrNotificationsDisabled = errors.New("notifications are disabled")

	// ErrNotificationFailed is returned when the digest email could not be sent.
	ErrNotificationFailed = errors.New("failed to send notification")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeReportProjectNotFound ReportErrorCode = "RPT-010001"

	// Store errors (02XXXX)
	ErrCodePortfolioLoadFailed ReportErrorCode = "RPT-020001"

	// Notification errors (03XXXX)
	ErrCodeNotificationsDisabled ReportErrorCode = "RPT-030001"
	ErrCodeNotificationFailed    ReportErrorCode = "RPT-030002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
