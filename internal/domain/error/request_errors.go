package error

// RequestErrorCode defines error codes for failures that are not tied to an aggregate.
// Format: REQ-XXYYYY where XX is category and YYYY is specific error.
type RequestErrorCode string

const (
	// Request errors (01XXXX)
	ErrCodeInvalidRequest RequestErrorCode = "REQ-010001"
	ErrCodeRateLimited    RequestErrorCode = "REQ-010002"

	// Store errors (02XXXX)
	ErrCodeStoreUnavailable    RequestErrorCode = "REQ-020001"
	ErrCodeConstraintViolation RequestErrorCode = "REQ-020002"
	ErrCodeConcurrentUpdate    RequestErrorCode = "REQ-020003"
	ErrCodeInternal            RequestErrorCode = "REQ-020004"
)
