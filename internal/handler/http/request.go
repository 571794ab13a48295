// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

const fieldID = "id"

// parseIDParam reads a positive integer path parameter.
func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, validators.NewFieldError(name, validators.MsgPositiveInt)
	}
	return id, nil
}

// parseListPostsRequest reads user_id, limit and offset from the query
// string. Absent parameters keep their zero value. Range checks are left to
// the post validator.
func parseListPostsRequest(r *http.Request) (models.ListPostsRequest, error) {
	query := r.URL.Query()
	verr := &validators.ValidationError{}

	var req models.ListPostsRequest

	if v := query.Get(validators.FieldUserID); v != "" {
		userID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || userID <= 0 {
			verr.Add(validators.FieldUserID, validators.MsgPositiveInt)
		}
		req.UserID = userID
	}

	if v := query.Get(validators.FieldLimit); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			verr.Add(validators.FieldLimit, validators.MsgNonNegativeInt)
		}
		req.Limit = limit
	}

	if v := query.Get(validators.FieldOffset); v != "" {
		offset, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			verr.Add(validators.FieldOffset, validators.MsgNonNegativeInt)
		}
		req.Offset = offset
	}

	return req, verr.OrNil()
}
