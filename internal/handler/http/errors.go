// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoRoute is reported for paths no route matches.
	ErrNoRoute = errors.New("route not found")

	// ErrMethodNotAllowed is reported when the path exists but not for the
	// request method.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrInvalidGzipBody is returned when a request declares gzip content
	// encoding but the body is not valid gzip.
	ErrInvalidGzipBody = errors.New("invalid gzip request body")
)
