// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Comment is a reply to an article.
type Comment struct {
	CommentID int       `json:"comment_id"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	Author    string    `json:"author"`
	ArticleID int       `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}
