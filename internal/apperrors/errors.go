// Package apperrors defines the error kinds every layer of the backend
// reports: validation, auth, forbidden, not-found and conflict. The HTTP
// layer maps each kind to a status code; services never touch HTTP.
package apperrors

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string

	// Fields is the field-presence map returned with validation errors:
	// field name -> whether the field was supplied.
	Fields map[string]bool
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string, fields map[string]bool) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// KindOf extracts the kind from err, defaulting to KindInternal for errors
// that did not originate in this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldsOf returns the field-presence map carried by a validation error,
// or nil.
func FieldsOf(err error) map[string]bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
