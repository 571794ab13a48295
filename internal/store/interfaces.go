// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Email uniqueness is enforced by the
// database, so concurrent inserts of the same email leave exactly one row.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns ErrEmailAlreadyExists if the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with exactly this email
	// (case-sensitive) or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with this id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// ExistsByEmail reports whether a user with this email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PostRepository persists blog posts.
type PostRepository interface {
	// CreatePost inserts post and returns it with PostID and timestamps set.
	// Returns ErrAuthorNotFound if post.UserID does not reference a user.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// GetPost returns the post with this id or ErrPostNotFound.
	GetPost(ctx context.Context, postID int64) (models.Post, error)

	// ListPosts returns posts newest first, optionally filtered by author.
	ListPosts(ctx context.Context, req models.ListPostsRequest) ([]models.Post, error)

	// UpdatePost applies the non-nil fields of update and returns the
	// resulting post, or ErrPostNotFound.
	UpdatePost(ctx context.Context, postID int64, update models.UpdatePostRequest) (models.Post, error)

	// DeletePost removes the post or returns ErrPostNotFound.
	DeletePost(ctx context.Context, postID int64) error
}
