package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Code      string   `json:"code,omitempty"`
	Details   []string `json:"details,omitempty"`
	RequestID string   `json:"requestId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeValidation       = "VALIDATION_FAILED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConstraint       = "CONSTRAINT_VIOLATION"
	ErrCodeNoToken          = "NO_TOKEN"
	ErrCodeInvalidToken     = "INVALID_TOKEN"
	ErrCodeNotLoggedIn      = "NOT_LOGGED_IN"
	ErrCodeInvalidStatus    = "INVALID_STATUS"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeProviderRejected = "PROVIDER_REJECTED"
)

// DomainError is a business-level error with a stable code.
type DomainError struct {
	Code    string
	Message string
	Details []string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code so wrapped copies with details still
// compare equal to the sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying per-field details.
func NewValidationError(details []string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: "Validation failed",
		Details: details,
	}
}

// Common domain errors
var (
	ErrCredentialsRequired = NewDomainError(ErrCodeMissingField, "Email and password required")
	ErrValidation          = NewDomainError(ErrCodeValidation, "Validation failed")
	ErrNotFound            = NewDomainError(ErrCodeNotFound, "Record not found")
	ErrNoToken             = NewDomainError(ErrCodeNoToken, "No token provided")
	ErrInvalidToken        = NewDomainError(ErrCodeInvalidToken, "Invalid or expired token")
	ErrNotLoggedIn         = NewDomainError(ErrCodeNotLoggedIn, "User not logged in!")
	ErrInvalidOrderStatus  = NewDomainError(ErrCodeInvalidStatus, "Order status must be pending, preparing or delivered")
)
