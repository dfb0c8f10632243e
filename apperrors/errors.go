package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain error so controllers can translate it to an
// HTTP status without inspecting message text.
type Kind int

const (
	KindNotFound Kind = iota
	KindConflict
	KindValidation
	KindMalformed
	KindInternal
)

// Error is a tagged domain error. Entity, ID and Field carry the context
// the message refers to.
type Error struct {
	Kind   Kind
	Entity string
	ID     uint
	Field  string
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports that the entity with the given id does not exist.
func NotFound(entity string, id uint) *Error {
	return &Error{
		Kind:   KindNotFound,
		Entity: entity,
		ID:     id,
		Msg:    fmt.Sprintf("%s with id %d not found", entity, id),
	}
}

// NotFoundMsg reports a missing entity with a custom message, for lookups
// that are not by id (e.g. by email) or for empty collections.
func NotFoundMsg(entity, msg string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Msg: msg}
}

// Conflict reports a uniqueness or state conflict on the given field.
func Conflict(entity, field, msg string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, Field: field, Msg: msg}
}

// Validation reports a field that failed its format or range constraint.
func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Msg: msg}
}

// Malformed reports a request body that could not be parsed.
func Malformed(msg string) *Error {
	return &Error{Kind: KindMalformed, Msg: msg}
}

// Internal wraps an unexpected failure.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// HTTPStatus maps an error to the status code the interface layer should
// respond with. Untagged errors are treated as internal.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindValidation, KindMalformed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the human-readable message for an error response body.
// Internal details wrapped inside the error are not exposed.
func Message(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "unexpected error"
	}
	if e.Kind == KindInternal {
		return e.Msg
	}
	return e.Error()
}
