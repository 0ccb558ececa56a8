package types

// ErrorKind classifies tool execution failures.
//
// Every fallible precondition maps to exactly one kind so callers receive a
// structured failure instead of a generic message. All kinds describe
// deterministic caller-input errors; none are transient.
type ErrorKind string

const (
	// Normalization failures
	ErrInvalidNumber ErrorKind = "invalid_number"
	ErrNotAnInteger  ErrorKind = "not_an_integer"
	ErrEmptyInput    ErrorKind = "empty_input"

	// Operation precondition failures
	ErrDivisionByZero    ErrorKind = "division_by_zero"
	ErrNegativeInput     ErrorKind = "negative_input"
	ErrNonPositiveInput  ErrorKind = "non_positive_input"
	ErrInsufficientData  ErrorKind = "insufficient_data"
	ErrDimensionMismatch ErrorKind = "dimension_mismatch"
	ErrInvalidRange      ErrorKind = "invalid_range"
	ErrOutOfRange        ErrorKind = "out_of_range"

	// Dispatch failures
	ErrUnknownTool    ErrorKind = "unknown_tool"
	ErrInvalidRequest ErrorKind = "invalid_request"
)

// ServiceError is a structured tool failure (kind + human-readable message).
type ServiceError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewError creates a ServiceError.
func NewError(kind ErrorKind, message string) *ServiceError {
	return &ServiceError{Kind: kind, Message: message}
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return string(e.Kind) + ": " + e.Message
}
