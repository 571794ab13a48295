// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/models"
)

// Field names used by [PostValidator].
const (
	FieldTitle  = "title"
	FieldBody   = "body"
	FieldLimit  = "limit"
	FieldOffset = "offset"
	FieldUserID = "user_id"
)

// MaxTitleLength bounds post titles, in characters.
const MaxTitleLength = 200

// PostValidator validates post create, update and list requests.
type PostValidator struct{}

// NewPostValidator constructs a [PostValidator].
func NewPostValidator() Validator {
	return &PostValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.CreatePostRequest / *models.CreatePostRequest
//   - models.UpdatePostRequest / *models.UpdatePostRequest
//   - models.ListPostsRequest / *models.ListPostsRequest
func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreatePostRequest:
		return v.validateCreate(ctx, value, fields...)
	case *models.CreatePostRequest:
		return v.validateCreate(ctx, *value, fields...)

	case models.UpdatePostRequest:
		return v.validateUpdate(ctx, value)
	case *models.UpdatePostRequest:
		return v.validateUpdate(ctx, *value)

	case models.ListPostsRequest:
		return v.validateList(ctx, value)
	case *models.ListPostsRequest:
		return v.validateList(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validateCreate(_ context.Context, req models.CreatePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldBody}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if msg := checkTitle(req.Title); msg != "" {
				verr.Add(FieldTitle, msg)
			}
		case FieldBody:
			if strings.TrimSpace(req.Body) == "" {
				verr.Add(FieldBody, msgRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.OrNil()
}

// validateUpdate requires at least one field; each provided field obeys the
// create rules.
func (v *PostValidator) validateUpdate(ctx context.Context, req models.UpdatePostRequest) error {
	if req.Title == nil && req.Body == nil {
		return NewFieldError(FieldTitle, msgNoFieldsToEdit)
	}

	create := models.CreatePostRequest{}
	fields := make([]string, 0, 2)
	if req.Title != nil {
		create.Title = *req.Title
		fields = append(fields, FieldTitle)
	}
	if req.Body != nil {
		create.Body = *req.Body
		fields = append(fields, FieldBody)
	}

	return v.validateCreate(ctx, create, fields...)
}

func (v *PostValidator) validateList(_ context.Context, req models.ListPostsRequest) error {
	if req.Limit > models.MaxPostsLimit {
		return NewFieldError(FieldLimit, fmt.Sprintf(msgLimitFmt, models.MaxPostsLimit))
	}
	if req.UserID < 0 {
		return NewFieldError(FieldUserID, MsgPositiveInt)
	}
	return nil
}

func checkTitle(title string) string {
	switch {
	case strings.TrimSpace(title) == "":
		return msgRequired
	case utf8.RuneCountInString(title) > MaxTitleLength:
		return fmt.Sprintf(msgTooLongFmt, MaxTitleLength)
	}
	return ""
}
