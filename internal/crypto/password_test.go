// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestBcryptHasher_HashIsSalted verifies that two hashes of the same password
// differ, and that both verify.
func TestBcryptHasher_HashIsSalted(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	h1, err := h.Hash("secret1")
	require.NoError(t, err)
	h2, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.Len(t, h2, len(h1))
	assert.True(t, h.Verify("secret1", h1))
	assert.True(t, h.Verify("secret1", h2))
}

// TestBcryptHasher_VerifyRejects covers every way Verify returns false.
func TestBcryptHasher_VerifyRejects(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.False(t, h.Verify("secret2", hash))
	assert.False(t, h.Verify("", hash))
	assert.False(t, h.Verify("secret1", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("secret1", ""))
}

// TestBcryptHasher_TooLong verifies that passwords beyond bcrypt's 72-byte
// limit are rejected.
func TestBcryptHasher_TooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)

	_, err = h.Hash(strings.Repeat("a", 72))
	assert.NoError(t, err)
}

// TestBcryptHasher_VerifyMaxLengthPassword verifies that a password of exactly
// MaxPasswordBytes does not match longer inputs sharing its prefix.
func TestBcryptHasher_VerifyMaxLengthPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	password := strings.Repeat("p", MaxPasswordBytes)

	hash, err := h.Hash(password)
	require.NoError(t, err)

	assert.True(t, h.Verify(password, hash))
	assert.False(t, h.Verify(password+"-definitely-wrong", hash))
	assert.False(t, h.Verify(password+"x", hash))
	assert.False(t, h.Verify(password[:MaxPasswordBytes-1], hash))
}

// TestNewBcryptHasher_Cost verifies the configured cost is embedded in the
// hash and that out-of-range costs fall back to the default.
func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"min", bcrypt.MinCost, bcrypt.MinCost},
		{"explicit", 5, 5},
		{"too low", 1, bcrypt.DefaultCost},
		{"too high", 99, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBcryptHasher(tt.in).cost)
		})
	}

	hash, err := NewBcryptHasher(5).Hash("pw")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}
