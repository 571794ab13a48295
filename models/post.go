// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a blog entry owned by a single user.
type Post struct {
	// PostID is the database identifier of the post.
	PostID int64 `json:"id"`

	// UserID is the author. Only the author may update or delete the post.
	UserID int64 `json:"user_id"`

	Title string `json:"title"`
	Body  string `json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
