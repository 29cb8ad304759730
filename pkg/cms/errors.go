package cms

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ErrorKind discriminates the failure taxonomy raised by the SDK.
type ErrorKind string

const (
	// ErrorKindAuth covers 401 and 403 responses.
	ErrorKindAuth ErrorKind = "auth"

	// ErrorKindNotFound covers 404 responses.
	ErrorKindNotFound ErrorKind = "not_found"

	// ErrorKindValidation covers 400 responses.
	ErrorKindValidation ErrorKind = "validation"

	// ErrorKindRateLimit covers 429 responses.
	ErrorKindRateLimit ErrorKind = "rate_limit"

	// ErrorKindServer covers retryable 5xx responses (500, 502, 503, 504).
	ErrorKindServer ErrorKind = "server"

	// ErrorKindNetwork covers connection-level failures with no HTTP status.
	ErrorKindNetwork ErrorKind = "network"

	// ErrorKindUnclassified covers everything else.
	ErrorKindUnclassified ErrorKind = "unclassified"
)

// Error is the typed failure raised to SDK callers. It is a tagged union:
// callers branch on Kind rather than on concrete error types. Retryable
// reports whether the transport may safely re-attempt the request.
//
// An Error is constructed once per failed call and never mutated afterwards.
type Error struct {
	Kind       ErrorKind
	HTTPStatus int
	Message    string
	Details    interface{}
	Retryable  bool
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("cms: %s (status %d): %s", e.Kind, e.HTTPStatus, e.Message)
	}

	return fmt.Sprintf("cms: %s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Classify converts a completed failed call into a typed Error. It is the
// single point where raw transport failures become domain failures; the rest
// of the SDK never re-classifies. A status of 0 means the request never got
// an HTTP response (connection-level failure).
func Classify(status int, body []byte, cause error) *Error {
	classified := &Error{
		HTTPStatus: status,
		Cause:      cause,
	}

	switch status {
	case 0:
		classified.Kind = ErrorKindNetwork
		classified.Retryable = true
	case 401, 403:
		classified.Kind = ErrorKindAuth
	case 404:
		classified.Kind = ErrorKindNotFound
	case 400:
		classified.Kind = ErrorKindValidation
	case 429:
		classified.Kind = ErrorKindRateLimit
		classified.Retryable = true
	case 500, 502, 503, 504:
		classified.Kind = ErrorKindServer
		classified.Retryable = true
	default:
		classified.Kind = ErrorKindUnclassified
	}

	classified.Message = extractMessage(body)
	if classified.Message == "" && cause != nil {
		classified.Message = cause.Error()
	}

	if classified.Message == "" {
		classified.Message = defaultMessage(classified.Kind, status)
	}

	if len(body) > 0 {
		var details interface{}
		if err := json.Unmarshal(body, &details); err == nil {
			classified.Details = details
		}
	}

	return classified
}

// ClassifyError converts an arbitrary failure into a typed Error. A failure
// that is already classified passes through unchanged, so classification is
// idempotent and never double-wraps. Connection-level failures map to
// ErrorKindNetwork; anything unrecognized becomes ErrorKindUnclassified with
// the original failure preserved as cause and details.
func ClassifyError(err error) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &Error{
			Kind:      ErrorKindNetwork,
			Message:   urlErr.Error(),
			Retryable: true,
			Cause:     err,
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return &Error{
			Kind:      ErrorKindNetwork,
			Message:   netErr.Error(),
			Retryable: true,
			Cause:     err,
		}
	}

	return &Error{
		Kind:    ErrorKindUnclassified,
		Message: err.Error(),
		Details: err,
		Cause:   err,
	}
}

// IsRetryable reports whether a failure is eligible for automatic re-attempt.
// Classified errors answer per their Retryable flag; raw connection-level
// failures are retryable; everything else is not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified.Retryable
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}

// IsRetryableStatus reports whether a raw HTTP status is eligible for retry:
// 429 or any 5xx.
func IsRetryableStatus(status int) bool {
	return status == 429 || status >= 500
}

// IsAuth checks if the error is an authentication or authorization failure.
func IsAuth(err error) bool {
	return kindOf(err) == ErrorKindAuth
}

// IsNotFound checks if the error is a not found failure.
func IsNotFound(err error) bool {
	return kindOf(err) == ErrorKindNotFound
}

// IsValidation checks if the error is a validation failure.
func IsValidation(err error) bool {
	return kindOf(err) == ErrorKindValidation
}

// IsRateLimit checks if the error is a rate limit failure.
func IsRateLimit(err error) bool {
	return kindOf(err) == ErrorKindRateLimit
}

func kindOf(err error) ErrorKind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}

	return ""
}

// extractMessage pulls a human-readable message out of an error response
// body. Policy, in order: a JSON string is used verbatim; an object's string
// "message" field; an object's "error" field when it is a string or carries
// its own string "message"; a "details" array joined with ", " (each
// element's "message" field if object-shaped, else its stringified form).
// A body that is not valid JSON is used verbatim as plain text. Returns ""
// when nothing usable is found.
func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}

	switch value := parsed.(type) {
	case string:
		return value
	case map[string]interface{}:
		return extractObjectMessage(value)
	default:
		return ""
	}
}

func extractObjectMessage(object map[string]interface{}) string {
	if message, ok := object["message"].(string); ok {
		return message
	}

	switch errField := object["error"].(type) {
	case string:
		return errField
	case map[string]interface{}:
		if message, ok := errField["message"].(string); ok {
			return message
		}
	}

	if details, ok := object["details"].([]interface{}); ok {
		parts := make([]string, 0, len(details))
		for _, detail := range details {
			parts = append(parts, detailString(detail))
		}

		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}

	return ""
}

func detailString(detail interface{}) string {
	if object, ok := detail.(map[string]interface{}); ok {
		if message, ok := object["message"].(string); ok {
			return message
		}
	}

	return fmt.Sprintf("%v", detail)
}

func defaultMessage(kind ErrorKind, status int) string {
	if status > 0 {
		return fmt.Sprintf("request failed with status %d", status)
	}

	return string(kind)
}
