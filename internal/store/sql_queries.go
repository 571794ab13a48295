// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-blog/models"
)

var (
	userColumns = []string{"user_id", "name", "email", "password_hash", "gender", "created_at"}
	postColumns = []string{"post_id", "user_id", "title", "body", "created_at", "updated_at"}
)

// now returns the timestamp stored for new and updated rows. Microsecond
// precision is what PostgreSQL keeps, so the value handed back to the caller
// matches later reads.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := db.builder.
		Insert(user.TableName()).
		Columns("name", "email", "password_hash", "gender", "created_at").
		Values(user.Name, user.Email, user.PasswordHash, string(user.Gender), user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildFindUserQuery(where sq.Eq) (string, []any, error) {
	query, args, err := db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildExistsByEmailQuery(email string) (string, []any, error) {
	query, args, err := db.builder.
		Select("1").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildCreatePostQuery(post models.Post) (string, []any, error) {
	query, args, err := db.builder.
		Insert(post.TableName()).
		Columns("user_id", "title", "body", "created_at", "updated_at").
		Values(post.UserID, post.Title, post.Body, post.CreatedAt, post.UpdatedAt).
		Suffix("RETURNING post_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildGetPostQuery(postID int64) (string, []any, error) {
	query, args, err := db.builder.
		Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(sq.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListPostsQuery orders by creation time, then id, so pages are stable
// for posts created within the same instant.
func (db *DB) buildListPostsQuery(req models.ListPostsRequest) (string, []any, error) {
	limit := req.Limit
	if limit == 0 {
		limit = models.DefaultPostsLimit
	}

	builder := db.builder.
		Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("created_at DESC", "post_id DESC").
		Limit(limit).
		Offset(req.Offset)

	if req.UserID != 0 {
		builder = builder.Where(sq.Eq{"user_id": req.UserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdatePostQuery sets updated_at plus every non-nil field of update.
func (db *DB) buildUpdatePostQuery(postID int64, update models.UpdatePostRequest, updatedAt time.Time) (string, []any, error) {
	builder := db.builder.
		Update(models.Post{}.TableName()).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"post_id": postID})

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Body != nil {
		builder = builder.Set("body", *update.Body)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildDeletePostQuery(postID int64) (string, []any, error) {
	query, args, err := db.builder.
		Delete(models.Post{}.TableName()).
		Where(sq.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var gender string
	if err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash, &gender, &user.CreatedAt); err != nil {
		return models.User{}, err
	}
	user.Gender = models.Gender(gender)
	user.CreatedAt = user.CreatedAt.UTC()
	return user, nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	if err := row.Scan(&post.PostID, &post.UserID, &post.Title, &post.Body, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return models.Post{}, err
	}
	post.CreatedAt = post.CreatedAt.UTC()
	post.UpdatedAt = post.UpdatedAt.UTC()
	return post, nil
}
