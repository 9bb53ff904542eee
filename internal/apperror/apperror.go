// Package apperror defines the error kinds shared by all modules.
//
// Module errors wrap one of the kinds with %w so that handlers can map any
// error to a response with errors.Is, without knowing every module sentinel.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrValidation indicates a missing or malformed required field.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound indicates that a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates an operation rejected by a lock or policy.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict indicates a duplicate value of a unique field.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable indicates a storage-layer fault. Safe to retry with backoff.
	ErrUnavailable = errors.New("service unavailable")
)

// Kind is a coarse error category used for response mapping.
type Kind string

// Error kinds.
const (
	KindValidation  Kind = "VALIDATION_ERROR"
	KindNotFound    Kind = "NOT_FOUND"
	KindForbidden   Kind = "FORBIDDEN"
	KindConflict    Kind = "CONFLICT"
	KindUnavailable Kind = "SERVICE_UNAVAILABLE"
	KindInternal    Kind = "INTERNAL_ERROR"
)

// KindOf classifies err. Unknown errors are KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrUnavailable):
		return KindUnavailable
	default:
		return KindInternal
	}
}

// HTTPStatus returns the response status code for a kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Unavailable wraps a storage error as ErrUnavailable unless it already
// carries one of the known kinds.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindInternal {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// Message returns the human-readable part of err that is safe to show to
// clients. Unavailable and internal errors never leak storage details; for
// the other kinds the leading kind text is dropped.
func Message(err error) string {
	switch KindOf(err) {
	case KindUnavailable:
		return "storage temporarily unavailable"
	case KindInternal:
		return "internal server error"
	}

	msg := err.Error()
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrForbidden, ErrConflict} {
		msg = strings.TrimPrefix(msg, kind.Error()+": ")
	}
	return msg
}
