// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-blog/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
)

// Field-level messages.
const (
	msgRequired       = "is required"
	msgInvalidEmail   = "must be a valid email address"
	msgInvalidGender  = "must be one of: male, female"
	msgNoFieldsToEdit = "at least one of title, body must be provided"
	msgTooLongFmt     = "must be at most %d characters"
	msgPasswordFmt    = "must be between %d and %d bytes"
	msgLimitFmt       = "must be between 0 and %d"
)

// ValidationError lists every field of an input that failed validation.
type ValidationError struct {
	Fields []models.FieldError
}

// Error implements error as "validation failed: field: message; ...".
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add records a failed field.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, models.FieldError{Field: field, Message: message})
}

// NewFieldError returns a ValidationError holding a single field failure.
func NewFieldError(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

// OrNil returns e as an error when it holds at least one field, nil
// otherwise.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Messages for malformed numeric parameters, shared with the transport layer
// that parses them.
const (
	MsgNonNegativeInt = "must be a non-negative integer"
	MsgPositiveInt    = "must be a positive integer"
)
