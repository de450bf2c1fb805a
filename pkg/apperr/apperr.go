package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failed operation for the HTTP boundary. Services map
// every internal failure to exactly one kind; no store or query detail
// crosses the boundary.
type Kind int

const (
	KindValidation Kind = iota + 1 // missing or malformed input
	KindConflict                   // duplicate business key
	KindAuth                       // bad credentials
	KindNotFound                   // missing resource
	KindServer                     // store or infrastructure failure
)

// Error carries a kind and a caller-safe message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error { return New(KindValidation, message) }
func Conflict(message string) *Error   { return New(KindConflict, message) }
func Auth(message string) *Error       { return New(KindAuth, message) }
func NotFound(message string) *Error   { return New(KindNotFound, message) }
func Server(message string) *Error     { return New(KindServer, message) }

// KindOf returns the kind of err, or KindServer for anything untyped.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindServer
}

// HTTPStatus maps a kind to its response status.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
