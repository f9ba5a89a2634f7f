// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and the request payloads accepted by the API.
package models

import "time"

// DefaultArticleImgURL is stored when a new article is posted without an image.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is a news article. CommentCount is computed at read time from the
// comments table and never stored. Body is only populated by single-article
// fetches and inserts; listings leave it empty.
type Article struct {
	ArticleID     int       `json:"article_id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Body          string    `json:"body,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// ArticlePage is one window of an article listing plus the number of
// matching articles across all pages.
type ArticlePage struct {
	Articles   []Article `json:"articles"`
	TotalCount int       `json:"total_count"`
}
