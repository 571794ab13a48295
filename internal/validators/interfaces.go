// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming account and post payloads before they
// reach storage. Every failure is reported as a [*ValidationError] so the HTTP
// layer can list the offending fields in a 422 response.
package validators

import "context"

// Validator checks a single request value. When fields are given only those
// fields are checked; otherwise the whole value is.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
