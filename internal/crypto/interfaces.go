// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"time"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns raw passwords into salted one-way hashes and checks
// raw passwords against them.
type PasswordHasher interface {
	// Hash returns a salted hash of raw. Hashing the same input twice yields
	// different strings, both of which verify.
	Hash(raw string) (string, error)

	// Verify reports whether raw matches hash. The comparison takes the same
	// time regardless of where the first mismatching byte is.
	Verify(raw, hash string) bool
}

// TokenManager issues and verifies signed bearer tokens.
//
// Verification is a pure function of the token, the shared signing secret
// and the current time; nothing is stored between Issue and Verify.
type TokenManager interface {
	// Issue signs claims into a token that expires ttl from now. The
	// returned Token carries the claims exactly as they will verify.
	Issue(claims models.Claims, ttl time.Duration) (models.Token, error)

	// Verify checks the signature, issuer and expiry of token and returns
	// its claims, or ErrTokenExpired / ErrTokenInvalid.
	Verify(token string) (models.Claims, error)
}
