// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Gender is the closed set of gender values a user profile may carry.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is one of the known gender values.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries: use
// [User.Public] whenever a user leaves the service layer.
type User struct {
	// UserID is the internal unique identifier of the user, assigned by the
	// database on insert.
	UserID int64 `json:"-"`

	// Name is the display name of the user.
	Name string `json:"-"`

	// Email is the unique login identifier. Stored and compared as provided
	// (case-sensitive).
	Email string `json:"-"`

	// PasswordHash is the bcrypt hash of the user's password. Never
	// serialized, never placed into a token.
	PasswordHash string `json:"-"`

	// Gender is the profile gender.
	Gender Gender `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the outward-facing view of u with the password hash
// stripped.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Gender:    u.Gender,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the only user shape that is written to HTTP responses.
// It intentionally has no password field at all.
type PublicUser struct {
	UserID    int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Gender    Gender    `json:"gender"`
	CreatedAt time.Time `json:"created_at"`
}
