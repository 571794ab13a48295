// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the public profile of the user or ErrUserNotFound.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.PublicUser, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.PublicUser{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "userService.GetUser").
			Int64("user_id", userID).
			Msg("error finding user")
		return models.PublicUser{}, fmt.Errorf("error finding user: %w", err)
	}

	return user.Public(), nil
}
