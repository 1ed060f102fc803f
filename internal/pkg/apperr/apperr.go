// Package apperr defines the error taxonomy shared by every API surface.
// Each Kind maps to exactly one transport status and public message; callers
// attach structured details for diagnostics. Anything that does not carry a
// Kind is reported as INTERNAL_ERROR with no leaked detail.
package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation   Kind = "VALIDATION_ERROR"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
	KindInternal     Kind = "INTERNAL_ERROR"
)

type catalogEntry struct {
	Status  int
	Message string
}

// Built once, never mutated at runtime.
var catalog = map[Kind]catalogEntry{
	KindValidation:   {Status: http.StatusBadRequest, Message: "Validation failed"},
	KindNotFound:     {Status: http.StatusNotFound, Message: "Not Found"},
	KindConflict:     {Status: http.StatusConflict, Message: "Conflict detected"},
	KindUnauthorized: {Status: http.StatusUnauthorized, Message: "Unauthorized"},
	KindForbidden:    {Status: http.StatusForbidden, Message: "Forbidden"},
	KindInternal:     {Status: http.StatusInternalServerError, Message: "Internal error"},
}

// Entry resolves the transport mapping for kind. Unrecognized kinds fall back
// to the INTERNAL_ERROR entry.
func Entry(kind Kind) (status int, message string) {
	entry, ok := catalog[kind]
	if !ok {
		entry = catalog[KindInternal]
	}
	return entry.Status, entry.Message
}

type Error struct {
	Kind    Kind
	Details map[string]any
	cause   error
}

func New(kind Kind, details map[string]any) *Error {
	return &Error{Kind: kind, Details: details}
}

// WrapInternal tags an unexpected failure so the boundary reports it as
// INTERNAL_ERROR while the cause stays available for logging.
func WrapInternal(err error) *Error {
	return &Error{Kind: KindInternal, cause: err}
}

func (e *Error) Error() string {
	_, msg := Entry(e.Kind)
	if e.cause != nil {
		return string(e.Kind) + ": " + msg + ": " + e.cause.Error()
	}
	return string(e.Kind) + ": " + msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf extracts the Kind carried by err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// DetailsOf returns the structured details carried by err, or nil.
func DetailsOf(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Details
	}
	return nil
}
