// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// auth is the authorization guard for protected routes.
//
// It extracts the bearer token from the "Authorization" header and hands it
// to [service.AuthService.Authorize], which verifies the token and checks
// that its user still exists. On success the claims are stored in the
// request context (see [utils.GetClaimsFromContext]) and the request
// logger gains a user_id field.
//
// Every rejection (missing or malformed header, expired, tampered or stale
// token) is answered with 401 by the error mapper.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if !ok {
			h.writeError(w, r, service.ErrMissingToken)
			return
		}

		claims, err := h.services.AuthService.Authorize(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		l := logger.FromRequest(r).With().Int64("user_id", claims.UserID).Logger()
		ctx := l.WithContext(utils.WithClaims(r.Context(), claims))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
