// Package apperr defines the error taxonomy shared by the service and storage
// layers. The API layer maps these to HTTP status codes; everything else is
// treated as an internal failure.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing input. It names the offending
// field so the caller can correct it. Nothing is persisted when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validationf builds a ValidationError for the given field.
func Validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a reference to a nonexistent resource.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %d", e.Resource, e.ID)
}

// NotFound builds a NotFoundError for the given resource and id.
func NotFound(resource string, id int64) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError reports an operation that would violate a domain invariant,
// such as deleting a category that transactions still reference.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Conflictf builds a ConflictError.
func Conflictf(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a failure of the underlying store. Any partial
// multi-row write has been rolled back by the time one is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Persistence wraps err as a PersistenceError unless it already belongs to the
// taxonomy, in which case it is passed through unchanged.
func Persistence(op string, err error) error {
	var nf *NotFoundError
	var cf *ConflictError
	var ve *ValidationError
	if errors.As(err, &nf) || errors.As(err, &cf) || errors.As(err, &ve) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
