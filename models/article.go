// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Article is a single blog post.
//
// ID, CreatedAt and UpdatedAt are assigned by the server; values sent by
// clients in those fields are ignored on save and update.
type Article struct {
	// ID is the server-assigned identifier (UUIDv7 string).
	ID string `json:"id"`

	// Title is the headline of the article.
	Title string `json:"title"`

	// Summary is a short teaser shown in article lists.
	Summary string `json:"summary"`

	// Content is the article body, usually Markdown.
	Content string `json:"content"`

	// Tags are free-form labels attached to the article.
	Tags Tags `json:"tags"`

	// CreatedAt is the moment the article was first saved.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the moment of the last update. Equal to CreatedAt for
	// articles that were never updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// Tags is a list of article labels persisted as a JSONB array.
type Tags []string

// Value implements [driver.Valuer]. A nil list is stored as an empty array.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]string(t))
}

// Scan implements [sql.Scanner] for JSONB columns.
func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported tags column type %T", src)
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return errors.Join(errors.New("error decoding tags"), err)
	}
	if tags == nil {
		tags = []string{}
	}

	*t = tags
	return nil
}
