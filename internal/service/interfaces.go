// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, logs them in and authorizes bearer tokens.
type AuthService interface {
	// Signup creates an account and returns it together with a fresh token.
	// Returns ErrDuplicateEmail if the email is already registered.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error)

	// Login checks the credentials and returns the user with a fresh token.
	// Unknown email and wrong password both return ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// Authorize verifies a bearer token and makes sure its user still
	// exists. Returns ErrMissingToken, ErrTokenExpired, ErrTokenInvalid or
	// ErrStaleToken on rejection.
	Authorize(ctx context.Context, token string) (models.Claims, error)
}

// UserService exposes public user profiles.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.PublicUser, error)
}

// PostService manages blog posts. Mutations are allowed to the author only.
type PostService interface {
	CreatePost(ctx context.Context, authorID int64, req models.CreatePostRequest) (models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	ListPosts(ctx context.Context, req models.ListPostsRequest) ([]models.Post, error)
	UpdatePost(ctx context.Context, actorID, postID int64, req models.UpdatePostRequest) (models.Post, error)
	DeletePost(ctx context.Context, actorID, postID int64) error
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// PostServiceWrapper defines middleware composition for PostService.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}
