package errors

import "fmt"

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNetwork   ErrorType = "network"
	ErrorTypeRateLimit ErrorType = "rate_limit"
	ErrorTypeAuth      ErrorType = "auth"
	ErrorTypeAPI       ErrorType = "api"
	ErrorTypeParsing   ErrorType = "parsing"
	ErrorTypeServer    ErrorType = "server_error"
	ErrorTypeUnknown   ErrorType = "unknown"
)

// Error represents an API error with type information
type Error struct {
	Type    ErrorType
	Message string
	Code    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
}

// IsRetryable checks if an error type should be retried. Only rate limiting
// and transient network failures are retried; auth failures, API-level errors
// embedded in the response body, and unexpected HTTP statuses terminate the
// fetch loop.
func IsRetryable(errorType ErrorType) bool {
	switch errorType {
	case ErrorTypeNetwork, ErrorTypeRateLimit:
		return true
	default:
		return false
	}
}
