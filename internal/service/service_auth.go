// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// dummyPassword is hashed once at construction. Login compares against its
// hash when the email is unknown so both failure paths cost one bcrypt run.
const dummyPassword = "go-blog:no-such-user"

// authService is the concrete implementation of AuthService.
// It persists users through a UserRepository, hashes passwords with a
// PasswordHasher and issues tokens with a TokenManager.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher crypto.PasswordHasher
	tokens crypto.TokenManager

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// dummyHash is the hash of dummyPassword.
	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. It fails only if the hasher
// cannot produce the dummy hash.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokens crypto.TokenManager,
	cfg config.App,
	logger *logger.Logger,
) (AuthService, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy password hash: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		tokenDuration:  cfg.TokenDuration,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// Signup registers a new user.
//
// The email is checked up front so a duplicate never reaches the insert; the
// unique index still decides between concurrent signups, and its violation
// is reported the same way.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	exists, err := a.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("func", "authService.Signup").Msg("error checking email")
		return models.AuthResult{}, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return models.AuthResult{}, ErrDuplicateEmail
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Signup").Msg("error hashing password")
		return models.AuthResult{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Gender:       req.Gender,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.AuthResult{}, ErrDuplicateEmail
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Signup").Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user signed up")

	return a.issue(ctx, user)
}

// Login authenticates an existing user by email and password.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.hasher.Verify(req.Password, a.dummyHash)
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Warn().Int64("user_id", user.UserID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	return a.issue(ctx, user)
}

// Authorize runs the guard: verify the token, then re-resolve its user.
func (a *authService) Authorize(ctx context.Context, token string) (models.Claims, error) {
	if token == "" {
		return models.Claims{}, ErrMissingToken
	}

	claims, err := a.tokens.Verify(token)
	if err != nil {
		return models.Claims{}, fmt.Errorf("token verification failed: %w", err)
	}

	if _, err = a.userRepository.FindUserByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Claims{}, ErrStaleToken
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "authService.Authorize").
			Int64("user_id", claims.UserID).
			Msg("error resolving token user")
		return models.Claims{}, fmt.Errorf("error resolving token user: %w", err)
	}

	return claims, nil
}

// issue signs a token over the public fields of user.
func (a *authService) issue(ctx context.Context, user models.User) (models.AuthResult, error) {
	public := user.Public()

	token, err := a.tokens.Issue(models.ClaimsFor(public), a.tokenDuration)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.issue").Msg("error issuing token")
		return models.AuthResult{}, fmt.Errorf("error issuing token: %w", err)
	}

	return models.AuthResult{User: public, Token: token.SignedString}, nil
}
