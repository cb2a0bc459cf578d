package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"go-stock-sales/pkg/validator"
)

// Kind categorizes an application error for handlers and tests.
type Kind string

const (
	KindValidation         Kind = "VALIDATION"
	KindConflict           Kind = "CONFLICT"
	KindNotFound           Kind = "NOT_FOUND"
	KindForbidden          Kind = "FORBIDDEN"
	KindInsufficientStock  Kind = "INSUFFICIENT_STOCK"
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindInactiveAccount    Kind = "INACTIVE_ACCOUNT"
	KindUnauthorized       Kind = "UNAUTHORIZED"
	KindInternal           Kind = "INTERNAL"
)

// Error is the typed error services raise and handlers map to HTTP.
// Business failures (validation, conflict, not found, forbidden,
// insufficient stock, bad credentials, inactive account) answer 400,
// session failures 401, persistence/config failures 500.
type Error struct {
	Kind    Kind
	Message string
	Fields  []validator.FieldError // populated for KindValidation only
	Err     error                  // wrapped cause, if any
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code the error maps to.
func (e *Error) Status() int {
	switch e.Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func NewValidation(fields []validator.FieldError) *Error {
	msg := "validation failed"
	if len(fields) > 0 {
		msg = fmt.Sprintf("validation failed: %s %s", fields[0].Field, fields[0].Message)
	}
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

func NewConflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func NewNotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NewForbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// NewInsufficientStock reports the product by name along with how many
// units are actually available.
func NewInsufficientStock(productName string, available int) *Error {
	return &Error{
		Kind:    KindInsufficientStock,
		Message: fmt.Sprintf("the stock has only %d units of product %s", available, productName),
	}
}

func NewInvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "incorrect password"}
}

func NewInactiveAccount() *Error {
	return &Error{Kind: KindInactiveAccount, Message: "this account is not active"}
}

func NewUnauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func NewInternal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// Is reports whether err is an application error of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// StatusOf maps any error to an HTTP status; unknown errors are internal.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status()
	}
	return http.StatusInternalServerError
}

// FieldsOf returns the field errors attached to a validation error.
func FieldsOf(err error) []validator.FieldError {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
