// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-resty/resty/v2"
)

type httpBlogAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogAdapter constructs the HTTP implementation of [BlogAPI]. The
// base URL comes from cfg.HTTPAddress ("http://" is assumed when no scheme
// is given) and cfg.Token, when set, is used for protected calls.
//
// Returns an error if cfg.HTTPAddress is empty or not a valid URL.
func NewHTTPBlogAdapter(cfg config.Adapter, logger *logger.Logger) (BlogAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpBlogAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlogAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBlogAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [BlogAPI] via POST /auth/signup.
func (h *httpBlogAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error) {
	return h.authenticate(ctx, "/auth/signup", req)
}

// Login implements [BlogAPI] via POST /auth/login.
func (h *httpBlogAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	return h.authenticate(ctx, "/auth/login", req)
}

func (h *httpBlogAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResult, error) {
	var result models.AuthResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	// the body carries the token; the header is a fallback
	if result.Token == "" {
		if token, ok := utils.ParseBearerToken(resp.Header().Get("Authorization")); ok {
			result.Token = token
		}
	}

	h.SetToken(result.Token)
	logger.FromContext(ctx).Debug().
		Str("func", "httpBlogAdapter.authenticate").
		Int64("user_id", result.User.UserID).
		Msg("token stored")

	return result, nil
}

func (h *httpBlogAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	var user models.PublicUser

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.PublicUser{}, err
	}

	resp, err := req.SetResult(&user).Get("/users/me")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

func (h *httpBlogAdapter) GetUser(ctx context.Context, userID int64) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetResult(&user).
		Get("/users/{id}")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// ListPosts implements [BlogAPI] via GET /posts. Zero-valued filters are not
// sent.
func (h *httpBlogAdapter) ListPosts(ctx context.Context, req models.ListPostsRequest) ([]models.Post, error) {
	var posts []models.Post

	query := map[string]string{}
	if req.UserID != 0 {
		query["user_id"] = strconv.FormatInt(req.UserID, 10)
	}
	if req.Limit != 0 {
		query["limit"] = strconv.FormatUint(req.Limit, 10)
	}
	if req.Offset != 0 {
		query["offset"] = strconv.FormatUint(req.Offset, 10)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(&posts).
		Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

func (h *httpBlogAdapter) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		SetResult(&post).
		Get("/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpBlogAdapter) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	var post models.Post

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Post{}, err
	}

	resp, err := r.SetBody(req).SetResult(&post).Post("/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpBlogAdapter) UpdatePost(ctx context.Context, postID int64, req models.UpdatePostRequest) (models.Post, error) {
	var post models.Post

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Post{}, err
	}

	resp, err := r.
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		SetBody(req).
		SetResult(&post).
		Patch("/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpBlogAdapter) DeletePost(ctx context.Context, postID int64) error {
	r, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := r.
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		Delete("/posts/{id}")
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBlogAdapter) Version(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/version")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}

// authedRequest returns a request carrying the stored bearer token, or
// ErrNoToken when none is set.
func (h *httpBlogAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
