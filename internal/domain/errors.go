package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrNotConfigured is returned by external adapters (geocoder, storage,
	// messenger) whose credentials are missing from the configuration.
	ErrNotConfigured = errors.New("not configured")

	ErrUploadFailed       = errors.New("upload failed")
	ErrNotificationFailed = errors.New("notification failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// UploadFailureReason classifies why media ingestion failed.
type UploadFailureReason string

const (
	// UploadNotConfigured means the object storage has no credentials. It is a
	// deployment problem and retrying will not help.
	UploadNotConfigured UploadFailureReason = "not_configured"
	// UploadInvalidPayload means the inline image could not be decoded.
	UploadInvalidPayload UploadFailureReason = "invalid_payload"
	// UploadStorage means the storage backend rejected or dropped the write.
	// The caller may retry.
	UploadStorage UploadFailureReason = "storage"
)

// UploadError is returned when an image could not be ingested.
// errors.Is(err, ErrUploadFailed) holds for every UploadError.
type UploadError struct {
	Reason   UploadFailureReason
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("upload failed (%s) for %q: %v", e.Reason, e.Filename, e.Err)
	}
	return fmt.Sprintf("upload failed (%s): %v", e.Reason, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

func (e *UploadError) Is(target error) bool { return target == ErrUploadFailed }

// Retryable reports whether the caller may retry the enclosing operation.
func (e *UploadError) Retryable() bool { return e.Reason == UploadStorage }
