// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-blog/internal/crypto"
)

var (
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrMissingToken = errors.New("missing bearer token")
	ErrStaleToken   = errors.New("token user no longer exists")

	// ErrTokenExpired and ErrTokenInvalid are the token verifier's errors,
	// re-exported so callers need not import crypto.
	ErrTokenExpired = crypto.ErrTokenExpired
	ErrTokenInvalid = crypto.ErrTokenInvalid

	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")
	ErrForbidden    = errors.New("only the author may change this post")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
