package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseCategory is returned when the expense category is unknown.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")

	// ErrCustomCategoryRequired is returned when a custom expense has no label.
	ErrCustomCategoryRequired = errors.New("custom category label is required")

	// ErrInvalidExpenseAmount is returned when the amount is zero or negative.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrExpenseProjectNotFound is returned when the expense references a missing project.
	ErrExpenseProjectNotFound = errors.New("expense project not found")

	// ErrInvalidExpenseDate is returned when the expense date is missing.
	ErrInvalidExpenseDate = errors.New("invalid expense date")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound        ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseCategory ExpenseErrorCode = "EXP-010002"
	ErrCodeCustomCategoryRequired ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010004"
	ErrCodeExpenseProjectNotFound ExpenseErrorCode = "EXP-010005"
	ErrCodeMissingExpenseFields   ExpenseErrorCode = "EXP-010006"
	ErrCodeInvalidExpenseDate     ExpenseErrorCode = "EXP-010007"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
