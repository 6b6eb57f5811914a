package api

import (
	"errors"
	"fmt"
)

// ErrUnreachable marks failures where no HTTP response was received at all
// (DNS failure, refused connection, timeout). Match with errors.Is.
var ErrUnreachable = errors.New("server unreachable")

// HTTPError is a response with a non-2xx status. Body is the raw response
// body; its shape is inconsistent across endpoints, so it is kept verbatim
// for the error translator to pick apart.
type HTTPError struct {
	StatusCode int
	Body       string
	// Message is the transport's own human-readable description,
	// e.g. "404 Not Found".
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}
