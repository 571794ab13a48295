// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
		Gender:   models.GenderMale,
	}
}

// fieldsOf extracts the failed field names from a *ValidationError.
func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestUserValidator_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	s := validSignup()
	assert.NoError(t, v.Validate(ctx, s))
	assert.NoError(t, v.Validate(ctx, &s))

	l := models.LoginRequest{Email: "a@x.com", Password: "x"}
	assert.NoError(t, v.Validate(ctx, l))
	assert.NoError(t, v.Validate(ctx, &l))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, s, "nickname"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, l, "gender"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Signup
// ---------------------------------------------------------------------------

func TestUserValidator_Signup(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(r *models.SignupRequest)
		wantFields []string
	}{
		{"valid", func(r *models.SignupRequest) {}, nil},
		{"valid unicode name at limit", func(r *models.SignupRequest) { r.Name = strings.Repeat("ж", MaxNameLength) }, nil},
		{"blank name", func(r *models.SignupRequest) { r.Name = "   " }, []string{FieldName}},
		{"long name", func(r *models.SignupRequest) { r.Name = strings.Repeat("a", MaxNameLength+1) }, []string{FieldName}},
		{"missing email", func(r *models.SignupRequest) { r.Email = "" }, []string{FieldEmail}},
		{"bad email", func(r *models.SignupRequest) { r.Email = "not-an-email" }, []string{FieldEmail}},
		{"email with display name", func(r *models.SignupRequest) { r.Email = "A <a@x.com>" }, []string{FieldEmail}},
		{"email with spaces", func(r *models.SignupRequest) { r.Email = " a@x.com" }, []string{FieldEmail}},
		{"long email", func(r *models.SignupRequest) { r.Email = strings.Repeat("a", 250) + "@x.com" }, []string{FieldEmail}},
		{"short password", func(r *models.SignupRequest) { r.Password = "12345" }, []string{FieldPassword}},
		{"password at max", func(r *models.SignupRequest) { r.Password = strings.Repeat("p", MaxPasswordLength) }, nil},
		{"long password", func(r *models.SignupRequest) { r.Password = strings.Repeat("p", MaxPasswordLength+1) }, []string{FieldPassword}},
		{"missing gender", func(r *models.SignupRequest) { r.Gender = "" }, []string{FieldGender}},
		{"unknown gender", func(r *models.SignupRequest) { r.Gender = "other" }, []string{FieldGender}},
		{
			"everything wrong",
			func(r *models.SignupRequest) { *r = models.SignupRequest{} },
			[]string{FieldName, FieldEmail, FieldPassword, FieldGender},
		},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.wantFields, fieldsOf(t, err))
		})
	}
}

// TestUserValidator_SignupFieldScoping verifies only the named fields are
// checked.
func TestUserValidator_SignupFieldScoping(t *testing.T) {
	v := NewUserValidator()
	req := models.SignupRequest{Email: "a@x.com"}

	assert.NoError(t, v.Validate(context.Background(), req, FieldEmail))
	assert.Equal(t, []string{FieldGender}, fieldsOf(t, v.Validate(context.Background(), req, FieldEmail, FieldGender)))
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestUserValidator_Login(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "whatever", Password: "p"}))
	assert.Equal(t, []string{FieldEmail}, fieldsOf(t, v.Validate(ctx, models.LoginRequest{Password: "p"})))
	assert.Equal(t, []string{FieldPassword}, fieldsOf(t, v.Validate(ctx, models.LoginRequest{Email: "a@x.com"})))
	assert.Equal(t, []string{FieldEmail, FieldPassword}, fieldsOf(t, v.Validate(ctx, models.LoginRequest{})))
}

// ---------------------------------------------------------------------------
// ValidationError
// ---------------------------------------------------------------------------

func TestValidationError(t *testing.T) {
	verr := &ValidationError{}
	assert.NoError(t, verr.OrNil())

	verr.Add("a", "is required")
	verr.Add("b", "is bad")
	assert.Equal(t, "validation failed: a: is required; b: is bad", verr.Error())
	assert.ErrorIs(t, verr.OrNil(), ErrValidation)

	single := NewFieldError("x", "y")
	assert.Equal(t, []models.FieldError{{Field: "x", Message: "y"}}, single.Fields)
}
