// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   Gender `json:"gender"`
}

// LoginRequest is the body of POST /auth/login. The identifier is always the
// email address.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by both signup and login: the public view of the
// user and a freshly issued bearer token.
type AuthResult struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// UpdatePostRequest represents a partial update of a post.
// Only non-nil fields are updated.
type UpdatePostRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

// ListPostsRequest holds the filters and paging for GET /posts.
type ListPostsRequest struct {
	// UserID restricts the result to a single author when non-zero.
	UserID int64 `json:"user_id,omitempty"`

	// Limit is the page size. Zero means [DefaultPostsLimit].
	Limit uint64 `json:"limit,omitempty"`

	// Offset is the number of posts to skip.
	Offset uint64 `json:"offset,omitempty"`
}

// DefaultPostsLimit is the page size used when a list request specifies none.
const DefaultPostsLimit uint64 = 20

// MaxPostsLimit is the largest page size a client may request.
const MaxPostsLimit uint64 = 100

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
