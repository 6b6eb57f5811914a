// Package common defines shared sentinel errors for the ForumApp client.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Caller-supplied input failed a local precondition; raised before
	// any network call is attempted.
	ErrValidation = errors.New("validation error")

	// An authenticated operation was attempted with no active session.
	ErrSessionExpired = errors.New("session expired")

	// The server payload could not be normalized into a domain record.
	ErrMalformedResponse = errors.New("malformed response")

	// The transport reached the server but the request failed.
	ErrRequestFailed = errors.New("request failed")

	// No response at all: the server could not be reached.
	ErrConnectivity = errors.New("connectivity error")
)

// Error is the single failure type surfaced to the UI layer. It carries one
// user-facing message and a kind sentinel so callers can decide what to do
// next (e.g. route to login on ErrSessionExpired) with errors.Is, without
// branching to decide what to show.
type Error struct {
	kind error
	msg  string
}

// NewError builds an Error of the given kind. The kind must be one of the
// sentinels above.
func NewError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Unwrap exposes the kind sentinel to errors.Is.
func (e *Error) Unwrap() error { return e.kind }
