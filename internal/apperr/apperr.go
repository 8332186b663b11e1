// Package apperr defines the tagged error values that handlers raise and the
// error normalizer maps onto the client-facing envelope.
package apperr

import "net/http"

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// ErrInvalidID is raised wherever a path parameter fails to parse as a UUID.
var ErrInvalidID = BadRequest("Resource not found. Invalid id")
