package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed client-side validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates the backend rejected the session (HTTP 401).
var ErrUnauthorized = errors.New("unauthorized")

// ErrRemote indicates the backend answered with a non-2xx status or could not be reached.
var ErrRemote = errors.New("remote request failed")

// ErrBusinessNotLocated indicates a business was submitted for creation but its
// server-assigned identifier could not be determined.
var ErrBusinessNotLocated = errors.New("business not created: identifier not found")

// ErrAdminCapacity indicates that creating the requested admins would exceed the
// business max_admins limit.
var ErrAdminCapacity = errors.New("maximum number of admins reached for this business")

// ErrWizardState indicates a wizard transition was attempted from the wrong step
// or before its preconditions were met.
var ErrWizardState = errors.New("invalid wizard state")

// ErrPartialSubmission indicates that at least one creation in a fan-out failed.
// Creations that already succeeded are not rolled back.
var ErrPartialSubmission = errors.New("some records could not be created")

// ValidationError describes a single failed client-side check.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// PartialSubmissionError reports a fan-out where some creations failed.
// Cause is the first failure observed.
type PartialSubmissionError struct {
	Succeeded int
	Failed    int
	Cause     error
}

func (e *PartialSubmissionError) Error() string {
	return fmt.Sprintf("%s: %d of %d failed: %v", ErrPartialSubmission.Error(), e.Failed, e.Succeeded+e.Failed, e.Cause)
}

// Unwrap exposes both ErrPartialSubmission and the cause.
func (e *PartialSubmissionError) Unwrap() []error {
	return []error{ErrPartialSubmission, e.Cause}
}
