// Package errors provides the error taxonomy for the Bard web client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrNoCredential    = errors.New("no usable credential")
	ErrEmptyResponse   = errors.New("empty response payload")
	ErrInvalidResponse = errors.New("invalid response format")
)

// AuthError means no usable credential could be resolved, or the resolved
// cookies were rejected by the landing page.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *AuthError) Is(target error) bool {
	if target == ErrNoCredential {
		return true
	}
	_, ok := target.(*AuthError)
	return ok
}

// NewAuthError creates a new AuthError
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// UpstreamError is a hard failure from the service: a non-success HTTP
// status, or an operation the service refuses (for example a sandbox export
// for a language it has no filename mapping for).
type UpstreamError struct {
	StatusCode int
	Endpoint   string
	Message    string
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("upstream error: %s", e.Message)
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(statusCode int, endpoint, message string) *UpstreamError {
	return &UpstreamError{StatusCode: statusCode, Endpoint: endpoint, Message: message}
}

// WithBody attaches the (truncated) response body for diagnostics
func (e *UpstreamError) WithBody(body string) *UpstreamError {
	e.Body = body
	return e
}

// EmptyResponseError means no streamed line yielded a usable payload after
// the fallback scan. RawBody carries the full body for diagnostics.
type EmptyResponseError struct {
	RawBody string
}

func (e *EmptyResponseError) Error() string {
	return "empty response: no payload line in stream; cookies or network environment may be invalid"
}

// Is allows comparison with the ErrEmptyResponse sentinel
func (e *EmptyResponseError) Is(target error) bool {
	if target == ErrEmptyResponse {
		return true
	}
	_, ok := target.(*EmptyResponseError)
	return ok
}

// NewEmptyResponseError creates a new EmptyResponseError
func NewEmptyResponseError(rawBody string) *EmptyResponseError {
	return &EmptyResponseError{RawBody: rawBody}
}

// ParseError is a structural mismatch in a required slot of the decoded
// payload. Optional slots never produce a ParseError; they decay to empty
// values instead.
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with the ErrInvalidResponse sentinel
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}

// NetworkError wraps a transport-level failure with its endpoint
type NetworkError struct {
	Operation string
	Endpoint  string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s at %s: %v", e.Operation, e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(operation, endpoint string, err error) *NetworkError {
	return &NetworkError{Operation: operation, Endpoint: endpoint, Err: err}
}

// TranslationError is non-fatal: callers log it and keep the original text
type TranslationError struct {
	Direction string // "outbound" or "inbound"
	Err       error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("%s translation failed: %v", e.Direction, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

// NewTranslationError creates a new TranslationError
func NewTranslationError(direction string, err error) *TranslationError {
	return &TranslationError{Direction: direction, Err: err}
}

// IsAuthError reports whether err is an authentication failure
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsEmptyResponse reports whether err is an empty-payload condition
func IsEmptyResponse(err error) bool {
	var emptyErr *EmptyResponseError
	return errors.As(err, &emptyErr)
}

// IsNetworkError reports whether err is a transport-level failure
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// GetHTTPStatus extracts the HTTP status from an UpstreamError chain, 0 if none
func GetHTTPStatus(err error) int {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.StatusCode
	}
	return 0
}

// GetEndpoint extracts the endpoint from a structured error chain, "" if none
func GetEndpoint(err error) string {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Endpoint
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Endpoint
	}
	return ""
}

// GetResponseBody extracts the diagnostic body from an error chain, "" if none
func GetResponseBody(err error) string {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Body
	}
	var emptyErr *EmptyResponseError
	if errors.As(err, &emptyErr) {
		return emptyErr.RawBody
	}
	return ""
}
