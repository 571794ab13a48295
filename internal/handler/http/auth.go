// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// signup handles POST /auth/signup and answers 201 with the public user and
// a token. The token is also set in the "Authorization" response header.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", utils.BearerHeader(result.Token))
	utils.WriteJSON(w, result, http.StatusCreated)
}

// login handles POST /auth/login.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", utils.BearerHeader(result.Token))
	utils.WriteJSON(w, result, http.StatusOK)
}
