// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// Services aggregates every service the transport layer needs.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	PostService    PostService
	AppInfoService AppInfoService
}

// NewServices builds the services over storages. Auth and post services are
// wrapped with their validation decorators.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)
	tokens := crypto.NewJWTManager(cfg.App.TokenSignKey, cfg.App.TokenIssuer)

	authService, err := NewAuthService(storages.UserRepository, hasher, tokens, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		UserService:    NewUserService(storages.UserRepository, logger),
		PostService:    NewPostValidationService().Wrap(NewPostService(storages.PostRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
