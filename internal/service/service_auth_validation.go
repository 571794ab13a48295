// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// AuthValidationService rejects malformed signup and login requests before
// they reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, fmt.Errorf("error validating signup request: %w", err)
	}

	return v.inner.Signup(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, fmt.Errorf("error validating login request: %w", err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Authorize(ctx context.Context, token string) (models.Claims, error) {
	return v.inner.Authorize(ctx, token)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
