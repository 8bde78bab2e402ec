package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures where the backend could not
// be reached at all.
var ErrUnavailable = errors.New("server unavailable")

// HTTPError is returned for any non-2xx response that survives the single
// refresh-retry. Message is extracted from the response body on a
// best-effort basis.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// DecodeError is returned when a response declares a JSON content type but
// the body is not valid JSON.
type DecodeError struct {
	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }
