// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// listPosts handles GET /posts?user_id=&limit=&offset=.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	req, err := parseListPostsRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	posts, err := h.services.PostService.ListPosts(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseIDParam(r, fieldID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), postID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

// createPost handles POST /posts. The author is the authenticated user.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrMissingToken)
		return
	}

	var req models.CreatePostRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrMissingToken)
		return
	}

	postID, err := parseIDParam(r, fieldID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.UpdatePostRequest
	if err = utils.ReadJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.UpdatePost(r.Context(), userID, postID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrMissingToken)
		return
	}

	postID, err := parseIDParam(r, fieldID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), userID, postID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
