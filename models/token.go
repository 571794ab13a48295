// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Claims is the verified claim set carried by a bearer token.
//
// It echoes the public profile of the user it was issued to and never
// contains the password hash. After the authorization middleware accepts a
// request, the Claims are the request's authenticated identity.
type Claims struct {
	// UserID is the owner identifier stored in the "sub" claim.
	UserID int64 `json:"user_id"`

	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender Gender `json:"gender"`

	// IssuedAt and ExpiresAt are kept at second precision and in UTC, exactly
	// as they round-trip through the token.
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ClaimsFor builds the claim set for u. Timestamps are filled in by the
// token issuer.
func ClaimsFor(u PublicUser) Claims {
	return Claims{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		Gender: u.Gender,
	}
}

// Token is a signed bearer token together with the claims it encodes.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string

	// Claims are the values encoded into SignedString.
	Claims Claims
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
