package remote

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers should match these with errors.Is.
var (
	// ErrInvalidRequest means the request target could not be formed.
	// Defensive only; well-formed inputs never hit it.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyResponse means a 2xx response arrived with an empty body.
	ErrEmptyResponse = errors.New("empty response body")
)

// TransportError wraps a connectivity-level failure.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// StatusError reports a response status outside 200-299.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected http status %d", e.Code)
}

// DecodeError wraps a body that could not be parsed into a page.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding failure: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }
