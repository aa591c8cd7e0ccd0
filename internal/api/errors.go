package api

import "fmt"

// ErrorCode identifies the logical error reported by the NewsAPI service.
type ErrorCode string

// Error codes documented by the API. CodeUnknown is used for codes this
// client does not recognize.
const (
	CodeAPIKeyDisabled     ErrorCode = "apiKeyDisabled"
	CodeAPIKeyExhausted    ErrorCode = "apiKeyExhausted"
	CodeAPIKeyInvalid      ErrorCode = "apiKeyInvalid"
	CodeAPIKeyMissing      ErrorCode = "apiKeyMissing"
	CodeParameterInvalid   ErrorCode = "parameterInvalid"
	CodeParametersMissing  ErrorCode = "parametersMissing"
	CodeRateLimited        ErrorCode = "rateLimited"
	CodeSourcesTooMany     ErrorCode = "sourcesTooMany"
	CodeSourceDoesNotExist ErrorCode = "sourceDoesNotExist"
	CodeUnexpectedError    ErrorCode = "unexpectedError"
	CodeUnknown            ErrorCode = "unknown"
)

// APIError represents a logical failure reported by the NewsAPI service.
type APIError struct {
	StatusCode int
	Code       ErrorCode
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error %d (%s)", e.StatusCode, e.Code)
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError represents a response body that did not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
