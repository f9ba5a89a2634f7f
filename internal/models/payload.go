// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"math"
	"strings"
	"unicode/utf8"

	"newsboard/internal/apperr"
)

// Validation limits for request payloads.
const (
	maxTitleLen       = 300
	maxBodyLen        = 100_000
	maxCommentLen     = 10_000
	maxImgURLLen      = 2_000
	maxSlugLen        = 100
	maxDescriptionLen = 1_000
)

// Payload fields are pointers so that an absent field can be told apart from
// a present one. A field of the wrong JSON type fails at decode time.

// NewArticle is the body of POST /api/articles.
type NewArticle struct {
	Author        *string `json:"author"`
	Title         *string `json:"title"`
	Body          *string `json:"body"`
	Topic         *string `json:"topic"`
	ArticleImgURL *string `json:"article_img_url"`
}

// Validate requires author, title, body and topic.
func (a NewArticle) Validate() error {
	if blank(a.Author) || blank(a.Title) || blank(a.Body) || blank(a.Topic) {
		return apperr.BadRequest("")
	}
	if utf8.RuneCountInString(*a.Title) > maxTitleLen ||
		utf8.RuneCountInString(*a.Body) > maxBodyLen {
		return apperr.BadRequest("")
	}
	if a.ArticleImgURL != nil && utf8.RuneCountInString(*a.ArticleImgURL) > maxImgURLLen {
		return apperr.BadRequest("")
	}
	return nil
}

// ImgURL returns the requested image or the default one.
func (a NewArticle) ImgURL() string {
	if blank(a.ArticleImgURL) {
		return DefaultArticleImgURL
	}
	return strings.TrimSpace(*a.ArticleImgURL)
}

// NewComment is the body of POST /api/articles/{article_id}/comments.
type NewComment struct {
	Username *string `json:"username"`
	Body     *string `json:"body"`
}

// Validate requires username and body.
func (c NewComment) Validate() error {
	if blank(c.Username) || blank(c.Body) {
		return apperr.BadRequest("")
	}
	if utf8.RuneCountInString(*c.Body) > maxCommentLen {
		return apperr.BadRequest("")
	}
	return nil
}

// NewTopic is the body of POST /api/topics.
type NewTopic struct {
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

// Validate requires a slug and a description. The slug is stored as given,
// case included.
func (t NewTopic) Validate() error {
	if blank(t.Slug) || blank(t.Description) {
		return apperr.BadRequest("")
	}
	if utf8.RuneCountInString(*t.Slug) > maxSlugLen {
		return apperr.BadRequest("")
	}
	if utf8.RuneCountInString(*t.Description) > maxDescriptionLen {
		return apperr.BadRequest("")
	}
	return nil
}

// VoteUpdate is the body of the PATCH endpoints for articles and comments.
type VoteUpdate struct {
	IncVotes *int `json:"inc_votes"`
}

// Validate requires inc_votes to fit the int4 votes column.
func (v VoteUpdate) Validate() error {
	if v.IncVotes == nil {
		return apperr.BadRequest("")
	}
	if *v.IncVotes < math.MinInt32 || *v.IncVotes > math.MaxInt32 {
		return apperr.BadRequest("")
	}
	return nil
}

// blank reports whether an optional string is absent or only whitespace.
func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
