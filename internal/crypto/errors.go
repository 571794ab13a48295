// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrTokenExpired is returned by [TokenManager.Verify] for a correctly
	// signed token whose expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned by [TokenManager.Verify] for any token that
	// is malformed, carries a bad signature or was issued by someone else.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrInvalidTokenParams is returned by [TokenManager.Issue] when the ttl
	// is not positive.
	ErrInvalidTokenParams = errors.New("invalid params for issuing token")
)
