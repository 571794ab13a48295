// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/golang-jwt/jwt/v5"
)

// jwtClaims is the wire form of [models.Claims]. The user id travels in the
// registered "sub" claim, profile fields as private claims.
type jwtClaims struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
	jwt.RegisteredClaims
}

// JWTManager is a [TokenManager] producing HMAC-SHA256 signed JWTs.
type JWTManager struct {
	signKey []byte
	issuer  string
	now     func() time.Time
}

// NewJWTManager returns a JWTManager that signs with signKey and stamps and
// requires issuer as the "iss" claim.
func NewJWTManager(signKey, issuer string) *JWTManager {
	return &JWTManager{
		signKey: []byte(signKey),
		issuer:  issuer,
		now:     time.Now,
	}
}

// WithClock replaces the time source used for issuing and verifying tokens.
func (m *JWTManager) WithClock(now func() time.Time) *JWTManager {
	m.now = now
	return m
}

// Issue implements [TokenManager].
//
// IssuedAt and ExpiresAt are truncated to whole seconds in UTC, which is the
// precision a JWT NumericDate carries, so the returned claims compare equal
// to what Verify later yields.
func (m *JWTManager) Issue(claims models.Claims, ttl time.Duration) (models.Token, error) {
	if ttl <= 0 {
		return models.Token{}, ErrInvalidTokenParams
	}

	issuedAt := m.now().UTC().Truncate(time.Second)
	claims.IssuedAt = issuedAt
	claims.ExpiresAt = issuedAt.Add(ttl).Truncate(time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		Name:   claims.Name,
		Email:  claims.Email,
		Gender: string(claims.Gender),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(claims.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})

	signed, err := token.SignedString(m.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: signed, Claims: claims}, nil
}

// Verify implements [TokenManager].
//
// The signature is checked before any claim, so a tampered token is always
// ErrTokenInvalid even when it has also expired.
func (m *JWTManager) Verify(tokenString string) (models.Claims, error) {
	parsed := &jwtClaims{}
	_, err := jwt.ParseWithClaims(tokenString, parsed, func(*jwt.Token) (any, error) {
		return m.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Claims{}, ErrTokenExpired
		}
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	userID, err := strconv.ParseInt(parsed.Subject, 10, 64)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: bad subject: %w", ErrTokenInvalid, err)
	}

	claims := models.Claims{
		UserID: userID,
		Name:   parsed.Name,
		Email:  parsed.Email,
		Gender: models.Gender(parsed.Gender),
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.UTC()
	}
	claims.ExpiresAt = parsed.ExpiresAt.UTC()

	return claims, nil
}
