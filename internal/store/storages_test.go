// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStorages opens a migrated SQLite database in a temp dir.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file:" + filepath.Join(t.TempDir(), "blog.db"),
	}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestNewStorages_UnsupportedDriver verifies the driver switch.
func TestNewStorages_UnsupportedDriver(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: "mysql"}}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

// TestSQLite_UserLifecycle exercises the user repository against a real
// database, including the unique email constraint.
func TestSQLite_UserLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	users := s.UserRepository

	exists, err := users.ExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	created, err := users.CreateUser(ctx, models.User{Name: "A", Email: "a@x.com", PasswordHash: "h", Gender: models.GenderMale})
	require.NoError(t, err)
	assert.NotZero(t, created.UserID)

	exists, err = users.ExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	byEmail, err := users.FindUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, byEmail.UserID)
	assert.Equal(t, "h", byEmail.PasswordHash)
	assert.True(t, created.CreatedAt.Equal(byEmail.CreatedAt))

	byID, err := users.FindUserByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, byEmail, byID)

	// emails compare case-sensitively
	_, err = users.FindUserByEmail(ctx, "A@X.COM")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	_, err = users.CreateUser(ctx, models.User{Name: "B", Email: "a@x.com", PasswordHash: "h2", Gender: models.GenderFemale})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = users.FindUserByID(ctx, created.UserID+100)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// TestSQLite_ConcurrentDuplicateInsert verifies that exactly one of many
// concurrent inserts with the same email succeeds.
func TestSQLite_ConcurrentDuplicateInsert(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		dupes     int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.UserRepository.CreateUser(ctx, models.User{Name: "A", Email: "race@x.com", PasswordHash: "h", Gender: models.GenderMale})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, ErrEmailAlreadyExists):
				dupes++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, dupes)
}

// TestSQLite_PostLifecycle exercises the post repository end to end.
func TestSQLite_PostLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	author, err := s.UserRepository.CreateUser(ctx, models.User{Name: "A", Email: "a@x.com", PasswordHash: "h", Gender: models.GenderMale})
	require.NoError(t, err)
	other, err := s.UserRepository.CreateUser(ctx, models.User{Name: "B", Email: "b@x.com", PasswordHash: "h", Gender: models.GenderFemale})
	require.NoError(t, err)

	_, err = s.PostRepository.CreatePost(ctx, models.Post{UserID: 9999, Title: "T", Body: "B"})
	assert.ErrorIs(t, err, ErrAuthorNotFound)

	first, err := s.PostRepository.CreatePost(ctx, models.Post{UserID: author.UserID, Title: "first", Body: "one"})
	require.NoError(t, err)
	second, err := s.PostRepository.CreatePost(ctx, models.Post{UserID: author.UserID, Title: "second", Body: "two"})
	require.NoError(t, err)
	_, err = s.PostRepository.CreatePost(ctx, models.Post{UserID: other.UserID, Title: "third", Body: "three"})
	require.NoError(t, err)

	got, err := s.PostRepository.GetPost(ctx, first.PostID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
	assert.True(t, first.CreatedAt.Equal(got.CreatedAt))

	all, err := s.PostRepository.ListPosts(ctx, models.ListPostsRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := s.PostRepository.ListPosts(ctx, models.ListPostsRequest{UserID: author.UserID})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.PostID, mine[0].PostID)

	page, err := s.PostRepository.ListPosts(ctx, models.ListPostsRequest{UserID: author.UserID, Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, first.PostID, page[0].PostID)

	body := "edited"
	updated, err := s.PostRepository.UpdatePost(ctx, first.PostID, models.UpdatePostRequest{Body: &body})
	require.NoError(t, err)
	assert.Equal(t, "first", updated.Title)
	assert.Equal(t, "edited", updated.Body)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	require.NoError(t, s.PostRepository.DeletePost(ctx, first.PostID))
	_, err = s.PostRepository.GetPost(ctx, first.PostID)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.ErrorIs(t, s.PostRepository.DeletePost(ctx, first.PostID), ErrPostNotFound)
	_, err = s.PostRepository.UpdatePost(ctx, first.PostID, models.UpdatePostRequest{Body: &body})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

// TestWithSQLiteDefaults verifies pragmas are appended only when absent.
func TestWithSQLiteDefaults(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"blog.db", "blog.db?_foreign_keys=on&_busy_timeout=5000"},
		{"file:blog.db?cache=shared", "file:blog.db?cache=shared&_foreign_keys=on&_busy_timeout=5000"},
		{"blog.db?_fk=1&_busy_timeout=100", "blog.db?_fk=1&_busy_timeout=100"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, withSQLiteDefaults(tt.in))
		})
	}
}
