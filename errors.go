package newsapi

import (
	"errors"
	"fmt"

	"github.com/newsapi/client-go/internal/api"
)

// ErrorCode identifies the logical error reported by the NewsAPI service.
type ErrorCode = api.ErrorCode

// Error codes returned by the API.
const (
	CodeAPIKeyDisabled     = api.CodeAPIKeyDisabled
	CodeAPIKeyExhausted    = api.CodeAPIKeyExhausted
	CodeAPIKeyInvalid      = api.CodeAPIKeyInvalid
	CodeAPIKeyMissing      = api.CodeAPIKeyMissing
	CodeParameterInvalid   = api.CodeParameterInvalid
	CodeParametersMissing  = api.CodeParametersMissing
	CodeRateLimited        = api.CodeRateLimited
	CodeSourcesTooMany     = api.CodeSourcesTooMany
	CodeSourceDoesNotExist = api.CodeSourceDoesNotExist
	CodeUnexpectedError    = api.CodeUnexpectedError
	CodeUnknown            = api.CodeUnknown
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key can be resolved.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is invalid, disabled,
	// exhausted or missing.
	ErrUnauthorized = errors.New("invalid or disabled API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidParameter is returned when the upstream rejects a query
	// parameter.
	ErrInvalidParameter = errors.New("invalid request parameter")

	// ErrTooManySources is returned when too many sources are requested
	// at once.
	ErrTooManySources = errors.New("too many sources requested")

	// ErrSourceNotFound is returned when a requested source does not exist.
	ErrSourceNotFound = errors.New("source does not exist")
)

// APIError represents a logical failure reported by the NewsAPI service.
// It is never retried.
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

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.Code {
	case CodeAPIKeyDisabled, CodeAPIKeyExhausted, CodeAPIKeyInvalid, CodeAPIKeyMissing:
		return target == ErrUnauthorized
	case CodeRateLimited:
		return target == ErrRateLimited
	case CodeParameterInvalid, CodeParametersMissing:
		return target == ErrInvalidParameter
	case CodeSourcesTooMany:
		return target == ErrTooManySources
	case CodeSourceDoesNotExist:
		return target == ErrSourceNotFound
	}
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a network-level failure, surfaced after the retry
// policy has been exhausted.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError represents a response body that did not match the expected
// shape. It is not retried.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError is returned by request builders when a local constraint
// check fails. No network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Message)
}

// wrapError converts internal API errors to public errors so that
// errors.Is and errors.As work against the public types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Code:       apiErr.Code,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: netErr.Attempt,
		}
	}

	var decErr *api.DecodeError
	if errors.As(err, &decErr) {
		return &DecodeError{Err: decErr.Err}
	}

	return err
}
