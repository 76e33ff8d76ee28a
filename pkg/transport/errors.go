package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is returned when a response declared as JSON does not parse.
	ErrDecode = errors.New("invalid JSON response body")
	// ErrUnexpectedContent is returned by Result.Decode when the response
	// carried no JSON payload.
	ErrUnexpectedContent = errors.New("response has no JSON payload")
)

// RequestError reports a response whose status code was outside 200-299.
// Body holds the raw response text as received.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// StatusCode returns the HTTP status carried by err, if err wraps a
// *RequestError.
func StatusCode(err error) (int, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode, true
	}
	return 0, false
}

// IsStatus reports whether err wraps a *RequestError with the given status.
func IsStatus(err error, code int) bool {
	got, ok := StatusCode(err)
	return ok && got == code
}
