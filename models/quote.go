package models

import "time"

// Quote is a short citation displayed on the blog front page.
type Quote struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	ImageURL string `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
}
