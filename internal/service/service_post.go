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

// postService is the concrete implementation of PostService.
//
// Ownership is checked by reading the post before changing it. A post never
// changes author, so the read and the write need no transaction.
type postService struct {
	postRepository store.PostRepository
	logger         *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// CreatePost stores a post authored by authorID.
func (p *postService) CreatePost(ctx context.Context, authorID int64, req models.CreatePostRequest) (models.Post, error) {
	post, err := p.postRepository.CreatePost(ctx, models.Post{
		UserID: authorID,
		Title:  req.Title,
		Body:   req.Body,
	})
	if errors.Is(err, store.ErrAuthorNotFound) {
		// the author was deleted after the token was checked
		return models.Post{}, ErrStaleToken
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postService.CreatePost").
			Int64("user_id", authorID).
			Msg("error creating post")
		return models.Post{}, fmt.Errorf("error creating post: %w", err)
	}

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := p.postRepository.GetPost(ctx, postID)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postService.GetPost").
			Int64("post_id", postID).
			Msg("error getting post")
		return models.Post{}, fmt.Errorf("error getting post: %w", err)
	}

	return post, nil
}

// ListPosts returns a page of posts, newest first.
func (p *postService) ListPosts(ctx context.Context, req models.ListPostsRequest) ([]models.Post, error) {
	posts, err := p.postRepository.ListPosts(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postService.ListPosts").
			Any("request", req).
			Msg("error listing posts")
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	return posts, nil
}

// UpdatePost applies req to the post if actorID is its author.
func (p *postService) UpdatePost(ctx context.Context, actorID, postID int64, req models.UpdatePostRequest) (models.Post, error) {
	if err := p.checkOwner(ctx, actorID, postID); err != nil {
		return models.Post{}, err
	}

	post, err := p.postRepository.UpdatePost(ctx, postID, req)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postService.UpdatePost").
			Int64("post_id", postID).
			Msg("error updating post")
		return models.Post{}, fmt.Errorf("error updating post: %w", err)
	}

	return post, nil
}

// DeletePost removes the post if actorID is its author.
func (p *postService) DeletePost(ctx context.Context, actorID, postID int64) error {
	if err := p.checkOwner(ctx, actorID, postID); err != nil {
		return err
	}

	err := p.postRepository.DeletePost(ctx, postID)
	if errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postService.DeletePost").
			Int64("post_id", postID).
			Msg("error deleting post")
		return fmt.Errorf("error deleting post: %w", err)
	}

	return nil
}

func (p *postService) checkOwner(ctx context.Context, actorID, postID int64) error {
	post, err := p.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		logger.FromContext(ctx).Warn().
			Int64("post_id", postID).
			Int64("user_id", actorID).
			Msg("post change by non-author rejected")
		return ErrForbidden
	}
	return nil
}
