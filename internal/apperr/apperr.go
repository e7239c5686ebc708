// Package apperr defines the typed, user-correctable input errors of the
// calculation core. Every failure path in the calculator and advisor is a
// validated precondition returning one of these; none is transient and none
// warrants a retry.
package apperr

import (
	"errors"
	"net/http"
)

// Error is a user-correctable input error with a stable machine code and an
// i18n message key resolved at the HTTP boundary.
type Error struct {
	// Code is the machine-readable error code returned to clients.
	Code string
	// MessageKey is the i18n catalog key for the human-readable message.
	MessageKey string
	// Status is the HTTP status the error maps to.
	Status int
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Code }

// Is allows errors.Is matching by code, so wrapped errors still match their
// sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNoOrderData is returned when no order dataset has ever been uploaded.
	ErrNoOrderData = &Error{
		Code:       "no_order_data",
		MessageKey: "error.no_order_data",
		Status:     http.StatusBadRequest,
	}

	// ErrEmptyAfterFilter is returned when the packaging filter removes every
	// order row.
	ErrEmptyAfterFilter = &Error{
		Code:       "empty_after_filter",
		MessageKey: "error.empty_after_filter",
		Status:     http.StatusBadRequest,
	}

	// ErrNoConfiguredCombinations is returned when the depot-article
	// configuration removes every order row.
	ErrNoConfiguredCombinations = &Error{
		Code:       "no_configured_combinations",
		MessageKey: "error.no_configured_combinations",
		Status:     http.StatusBadRequest,
	}

	// ErrMissingDepotName is returned when a truck plan is requested without
	// a depot.
	ErrMissingDepotName = &Error{
		Code:       "missing_depot_name",
		MessageKey: "error.missing_depot_name",
		Status:     http.StatusBadRequest,
	}

	// ErrInvalidUpload is returned by the ingestion layer for malformed files
	// or files missing required columns.
	ErrInvalidUpload = &Error{
		Code:       "invalid_upload",
		MessageKey: "error.invalid_upload",
		Status:     http.StatusBadRequest,
	}
)

// From extracts the typed error from err, or nil if err carries none.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
