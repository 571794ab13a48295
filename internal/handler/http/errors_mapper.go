// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// errorStatuses is checked in order; the first sentinel err wraps decides the
// status. Domain errors come before transport and infrastructure ones.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrDuplicateEmail, http.StatusForbidden},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},

	{service.ErrMissingToken, http.StatusUnauthorized},
	{service.ErrTokenExpired, http.StatusUnauthorized},
	{service.ErrTokenInvalid, http.StatusUnauthorized},
	{service.ErrStaleToken, http.StatusUnauthorized},

	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrPostNotFound, http.StatusNotFound},
	{service.ErrForbidden, http.StatusForbidden},

	{utils.ErrMalformedJSON, http.StatusBadRequest},
	{ErrInvalidGzipBody, http.StatusBadRequest},
	{ErrNoRoute, http.StatusNotFound},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed},

	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// statusFromError returns the status for err and the sentinel it matched.
// Unknown errors map to 500 with a nil sentinel.
func statusFromError(err error) (int, error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError writes the JSON error body for err. Validation failures carry
// their field list; server-side failures are logged and reported by status
// text only.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		log.Info().Err(err).Msg("request failed validation")
		utils.WriteJSON(w, models.ErrorResponse{
			Error:  validators.ErrValidation.Error(),
			Fields: vErr.Fields,
		}, http.StatusUnprocessableEntity)
		return
	}

	status, target := statusFromError(err)
	message := http.StatusText(status)

	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("request failed")
	default:
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
		message = target.Error()
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="go-blog"`)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
