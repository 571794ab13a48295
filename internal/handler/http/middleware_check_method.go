// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound replaces chi's plain-text 404 with the JSON error body.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrNoRoute)
}

// methodNotAllowed replaces chi's plain-text 405 with the JSON error body.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrMethodNotAllowed)
}
