package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testPost(id, userID int64) models.Post {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Post{
		PostID:    id,
		UserID:    userID,
		Title:     "Hello",
		Body:      "First post",
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func strPtr(s string) *string { return &s }

// ── list ──

func TestListPosts_ParsesQuery(t *testing.T) {
	m, h := newTestHandler(t)
	m.posts.EXPECT().
		ListPosts(gomock.Any(), models.ListPostsRequest{UserID: 3, Limit: 10, Offset: 20}).
		Return([]models.Post{testPost(2, 3), testPost(1, 3)}, nil)

	rr := doRequest(t, h, http.MethodGet, "/posts?user_id=3&limit=10&offset=20", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeJSON[[]models.Post](t, rr)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].PostID)
}

func TestListPosts_EmptyIsArray(t *testing.T) {
	m, h := newTestHandler(t)
	m.posts.EXPECT().ListPosts(gomock.Any(), models.ListPostsRequest{}).Return(nil, nil)

	rr := doRequest(t, h, http.MethodGet, "/posts", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListPosts_BadQuery_ReportsEveryField(t *testing.T) {
	_, h := newTestHandler(t)

	rr := doRequest(t, h, http.MethodGet, "/posts?user_id=x&limit=-1&offset=y", nil)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	resp := decodeError(t, rr)
	fields := make([]string, 0, len(resp.Fields))
	for _, f := range resp.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{validators.FieldUserID, validators.FieldLimit, validators.FieldOffset}, fields)
}

// ── get ──

func TestGetPost_OK(t *testing.T) {
	m, h := newTestHandler(t)
	m.posts.EXPECT().GetPost(gomock.Any(), int64(5)).Return(testPost(5, 1), nil)

	rr := doRequest(t, h, http.MethodGet, "/posts/5", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hello", decodeJSON[models.Post](t, rr).Title)
}

func TestGetPost_NotFound(t *testing.T) {
	m, h := newTestHandler(t)
	m.posts.EXPECT().GetPost(gomock.Any(), int64(5)).Return(models.Post{}, service.ErrPostNotFound)

	rr := doRequest(t, h, http.MethodGet, "/posts/5", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── create ──

func TestCreatePost_AuthorFromToken(t *testing.T) {
	m, h := newTestHandler(t)
	req := models.CreatePostRequest{Title: "Hello", Body: "First post"}
	gomock.InOrder(
		m.expectAuthorized("tok", 1),
		m.posts.EXPECT().CreatePost(gomock.Any(), int64(1), req).Return(testPost(10, 1), nil),
	)

	rr := doRequest(t, h, http.MethodPost, "/posts", req, "Authorization", "Bearer tok")

	require.Equal(t, http.StatusCreated, rr.Code)
	got := decodeJSON[models.Post](t, rr)
	assert.Equal(t, int64(10), got.PostID)
	assert.Equal(t, int64(1), got.UserID)
}

func TestCreatePost_AuthorIDInBodyRejected(t *testing.T) {
	m, h := newTestHandler(t)
	m.expectAuthorized("tok", 1)

	rr := doRequest(t, h, http.MethodPost, "/posts", `{"title":"t","body":"b","user_id":2}`, "Authorization", "Bearer tok")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreatePost_WithoutToken(t *testing.T) {
	_, h := newTestHandler(t)

	rr := doRequest(t, h, http.MethodPost, "/posts", models.CreatePostRequest{Title: "t", Body: "b"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ── update ──

func TestUpdatePost_OK(t *testing.T) {
	m, h := newTestHandler(t)
	m.expectAuthorized("tok", 1)
	req := models.UpdatePostRequest{Title: strPtr("Renamed")}
	updated := testPost(5, 1)
	updated.Title = "Renamed"
	m.posts.EXPECT().UpdatePost(gomock.Any(), int64(1), int64(5), req).Return(updated, nil)

	rr := doRequest(t, h, http.MethodPatch, "/posts/5", req, "Authorization", "Bearer tok")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Renamed", decodeJSON[models.Post](t, rr).Title)
}

func TestUpdatePost_NotAuthor_Forbidden(t *testing.T) {
	m, h := newTestHandler(t)
	m.expectAuthorized("tok", 2)
	m.posts.EXPECT().UpdatePost(gomock.Any(), int64(2), int64(5), gomock.Any()).Return(models.Post{}, service.ErrForbidden)

	rr := doRequest(t, h, http.MethodPatch, "/posts/5", models.UpdatePostRequest{Body: strPtr("x")}, "Authorization", "Bearer tok")

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, service.ErrForbidden.Error(), decodeError(t, rr).Error)
}

func TestUpdatePost_BadID_NoBodyRead(t *testing.T) {
	m, h := newTestHandler(t)
	m.expectAuthorized("tok", 1)

	rr := doRequest(t, h, http.MethodPatch, "/posts/abc", `not json`, "Authorization", "Bearer tok")

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

// ── delete ──

func TestDeletePost_NoContent(t *testing.T) {
	m, h := newTestHandler(t)
	m.expectAuthorized("tok", 1)
	m.posts.EXPECT().DeletePost(gomock.Any(), int64(1), int64(5)).Return(nil)

	rr := doRequest(t, h, http.MethodDelete, "/posts/5", nil, "Authorization", "Bearer tok")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDeletePost_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not author", service.ErrForbidden, http.StatusForbidden},
		{"missing post", service.ErrPostNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, h := newTestHandler(t)
			m.expectAuthorized("tok", 1)
			m.posts.EXPECT().DeletePost(gomock.Any(), int64(1), int64(5)).Return(tt.err)

			rr := doRequest(t, h, http.MethodDelete, "/posts/5", nil, "Authorization", "Bearer tok")

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
