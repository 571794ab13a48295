// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrUnavailable         = errors.New("server unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoToken is returned by protected calls made before a token is set.
	ErrNoToken = errors.New("no bearer token set; sign up or log in first")

	errEmptyAddress = errors.New("empty address")
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
	Fields  []models.FieldError

	kind error
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "http %d: %s", e.Status, e.Message)
	for _, f := range e.Fields {
		fmt.Fprintf(&b, "; %s %s", f.Field, f.Message)
	}
	return b.String()
}

// Unwrap returns the sentinel matching the status, or nil for statuses
// without one.
func (e *APIError) Unwrap() error {
	return e.kind
}
