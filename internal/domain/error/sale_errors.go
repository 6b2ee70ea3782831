package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNotFound is returned when a sale is not found in the system.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrCustomerNameRequired is returned when a sale has no customer name.
	ErrCustomerNameRequired = errors.New("customer name is required")

	// ErrInvalidUnitType is returned when the unit type is unknown.
	ErrInvalidUnitType = errors.New("invalid unit type")

	// ErrInvalidPaymentType is returned when the payment type is unknown.
	ErrInvalidPaymentType = errors.New("invalid payment type")

	// ErrInvalidTotalPrice is returned when the total price is zero or negative.
	ErrInvalidTotalPrice = errors.New("invalid total price")

	// ErrInvalidDownPayment is returned when the down payment is negative or exceeds the total price.
	ErrInvalidDownPayment = errors.New("invalid down payment")

	// ErrInvalidInstallmentsCount is returned when an installment plan cannot cover the remaining amount.
	ErrInvalidInstallmentsCount = errors.New("invalid installments count")

	// ErrPaymentIndexOutOfRange is returned when a payment index does not address a scheduled payment.
	ErrPaymentIndexOutOfRange = errors.New("payment index out of range")

	// ErrSaleProjectNotFound is returned when the sale references a missing project.
	ErrSaleProjectNotFound = errors.New("sale project not found")

	// ErrUnitTypeNotOffered is returned when the project has no inventory of the unit type.
	ErrUnitTypeNotOffered = errors.New("unit type not offered by project")

	// ErrInvalidSaleDate is returned when the sale date is missing.
	ErrInvalidSaleDate = errors.New("invalid sale date")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSaleNotFound             SaleErrorCode = "SAL-010001"
	ErrCodeCustomerNameRequired     SaleErrorCode = "SAL-010002"
	ErrCodeInvalidUnitType          SaleErrorCode = "SAL-010003"
	ErrCodeInvalidPaymentType       SaleErrorCode = "SAL-010004"
	ErrCodeInvalidTotalPrice        SaleErrorCode = "SAL-010005"
	ErrCodeInvalidInstallmentsCount SaleErrorCode = "SAL-010006"
	ErrCodeInvalidDownPayment       SaleErrorCode = "SAL-010007"
	ErrCodeSaleProjectNotFound      SaleErrorCode = "SAL-010008"
	ErrCodeUnitTypeNotOffered       SaleErrorCode = "SAL-010009"
	ErrCodeMissingSaleFields        SaleErrorCode = "SAL-010010"
	ErrCodeInvalidSaleDate          SaleErrorCode = "SAL-010011"
	ErrCodePaymentIndexOutOfRange   SaleErrorCode = "SAL-010012"

	// Concurrency errors (02XXXX)
	ErrCodeConcurrentPaymentUpdate SaleErrorCode = "SAL-020001"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
