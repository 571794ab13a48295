// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the go-blog REST
// API.
//
// [BlogAPI] decouples callers (the CLI client, integration tests) from the
// wire protocol. The package ships an HTTP implementation built on resty
// ([NewHTTPBlogAdapter]).
//
// Non-2xx responses are turned into [*APIError] values that unwrap to the
// sentinels in errors.go, so callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BlogAPI is the client view of the go-blog server.
type BlogAPI interface {
	// SetToken stores the bearer token attached to every protected request.
	// Signup and Login call it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Signup registers a user and stores the issued token.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error)

	// Login authenticates by email and password and stores the issued token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// Me returns the profile of the token's user.
	Me(ctx context.Context) (models.PublicUser, error)

	// GetUser returns the public profile of any user.
	GetUser(ctx context.Context, userID int64) (models.PublicUser, error)

	ListPosts(ctx context.Context, req models.ListPostsRequest) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, req models.UpdatePostRequest) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppInfo, error)
}
