// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// PostValidationService validates post payloads and list filters before
// delegating to the wrapped PostService.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewPostValidator(),
	}
}

func (v *PostValidationService) CreatePost(ctx context.Context, authorID int64, req models.CreatePostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Post{}, fmt.Errorf("error validating new post: %w", err)
	}

	return v.inner.CreatePost(ctx, authorID, req)
}

func (v *PostValidationService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	return v.inner.GetPost(ctx, postID)
}

func (v *PostValidationService) ListPosts(ctx context.Context, req models.ListPostsRequest) ([]models.Post, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("error validating list request: %w", err)
	}

	return v.inner.ListPosts(ctx, req)
}

func (v *PostValidationService) UpdatePost(ctx context.Context, actorID, postID int64, req models.UpdatePostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Post{}, fmt.Errorf("error validating post update: %w", err)
	}

	return v.inner.UpdatePost(ctx, actorID, postID, req)
}

func (v *PostValidationService) DeletePost(ctx context.Context, actorID, postID int64) error {
	return v.inner.DeletePost(ctx, actorID, postID)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}
