// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/models"
)

// Field names used by [UserValidator]. They double as the JSON field names
// reported to clients.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldGender   = "gender"
)

// Limits applied to account fields.
const (
	MaxNameLength     = 100
	MaxEmailLength    = 254
	MinPasswordLength = 6
	MaxPasswordLength = crypto.MaxPasswordBytes
)

// UserValidator validates signup and login requests.
type UserValidator struct{}

// NewUserValidator constructs a [UserValidator].
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.SignupRequest / *models.SignupRequest
//   - models.LoginRequest / *models.LoginRequest
//
// Returns ErrUnsupportedType for anything else, ErrUnknownField for an
// unknown field name, or a *ValidationError listing every failed field.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(ctx, value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignup(_ context.Context, req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldGender}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldName:
			switch {
			case strings.TrimSpace(req.Name) == "":
				verr.Add(FieldName, msgRequired)
			case utf8.RuneCountInString(req.Name) > MaxNameLength:
				verr.Add(FieldName, fmt.Sprintf(msgTooLongFmt, MaxNameLength))
			}
		case FieldEmail:
			if msg := checkEmail(req.Email); msg != "" {
				verr.Add(FieldEmail, msg)
			}
		case FieldPassword:
			if len(req.Password) < MinPasswordLength || len(req.Password) > MaxPasswordLength {
				verr.Add(FieldPassword, fmt.Sprintf(msgPasswordFmt, MinPasswordLength, MaxPasswordLength))
			}
		case FieldGender:
			if !req.Gender.Valid() {
				verr.Add(FieldGender, msgInvalidGender)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.OrNil()
}

// validateLogin only checks presence; a wrong email format simply fails to
// match any account.
func (v *UserValidator) validateLogin(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if req.Email == "" {
				verr.Add(FieldEmail, msgRequired)
			}
		case FieldPassword:
			if req.Password == "" {
				verr.Add(FieldPassword, msgRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.OrNil()
}

// checkEmail returns a failure message, or "" for a valid address. Display
// names and surrounding whitespace are not accepted.
func checkEmail(email string) string {
	if email == "" {
		return msgRequired
	}
	if len(email) > MaxEmailLength {
		return fmt.Sprintf(msgTooLongFmt, MaxEmailLength)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return msgInvalidEmail
	}
	return ""
}
