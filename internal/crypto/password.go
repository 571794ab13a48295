// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt reads. Anything past it would be
// ignored when comparing, so both Hash and Verify refuse longer input.
const MaxPasswordBytes = 72

// BcryptHasher is a [PasswordHasher] backed by bcrypt. The salt and cost are
// embedded in every hash it produces.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given bcrypt cost. Costs outside
// [bcrypt.MinCost, bcrypt.MaxCost] fall back to [bcrypt.DefaultCost].
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher]. bcrypt only reads the first 72 bytes of
// its input, so longer passwords are rejected instead of silently truncated.
func (h *BcryptHasher) Hash(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// Verify implements [PasswordHasher].
func (h *BcryptHasher) Verify(raw, hash string) bool {
	if len(raw) > MaxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
