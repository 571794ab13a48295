// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" table.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost implements [PostRepository].
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	post.CreatedAt = now()
	post.UpdatedAt = post.CreatedAt

	query, args, err := p.db.buildCreatePostQuery(post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error building query")
		return models.Post{}, err
	}

	if err = p.db.QueryRowContext(ctx, query, args...).Scan(&post.PostID); err != nil {
		if p.db.errorClassifier.Classify(err) == ForeignKeyViolation {
			return models.Post{}, ErrAuthorNotFound
		}
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, p.db.classify(err, ErrExecutingStatement)
	}

	return post, nil
}

// GetPost implements [PostRepository].
func (p *postRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.db.buildGetPostQuery(postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error building query")
		return models.Post{}, err
	}

	post, err := scanPost(p.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Int64("post_id", postID).Msg("error selecting post")
		return models.Post{}, p.db.classify(err, ErrExecutingQuery)
	}

	return post, nil
}

// ListPosts implements [PostRepository]. An empty page is returned as a
// non-nil empty slice.
func (p *postRepository) ListPosts(ctx context.Context, req models.ListPostsRequest) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.db.buildListPostsQuery(req)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error building query")
		return nil, err
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error selecting posts")
		return nil, p.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error scanning post")
			return nil, errors.Join(ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error iterating posts")
		return nil, errors.Join(ErrScanningRows, err)
	}

	return posts, nil
}

// UpdatePost implements [PostRepository].
func (p *postRepository) UpdatePost(ctx context.Context, postID int64, update models.UpdatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.db.buildUpdatePostQuery(postID, update, now())
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building query")
		return models.Post{}, err
	}

	if err = p.execAffectingOne(ctx, query, args); err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Int64("post_id", postID).Msg("error updating post")
		return models.Post{}, err
	}

	return p.GetPost(ctx, postID)
}

// DeletePost implements [PostRepository].
func (p *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := p.db.buildDeletePostQuery(postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error building query")
		return err
	}

	if err = p.execAffectingOne(ctx, query, args); err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Int64("post_id", postID).Msg("error deleting post")
		return err
	}

	return nil
}

// execAffectingOne runs a statement targeting a single post and reports
// ErrPostNotFound when no row was touched.
func (p *postRepository) execAffectingOne(ctx context.Context, query string, args []any) error {
	result, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		return p.db.classify(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return p.db.classify(err, ErrExecutingStatement)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}
