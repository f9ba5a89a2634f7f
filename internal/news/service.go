// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package news implements the operations behind the HTTP API. It validates
// raw input before any store call, runs existence guards and turns absent
// rows into entity-specific not-found errors. Storage is injected through
// the repository interfaces so the service can run against a fake store.
package news

import (
	"context"

	"golang.org/x/sync/errgroup"

	"newsboard/internal/apperr"
	"newsboard/internal/models"
	"newsboard/internal/query"
)

// Service holds the repositories the operations run against.
type Service struct {
	articles ArticleRepository
	comments CommentRepository
	topics   TopicRepository
	users    UserRepository
}

// NewService creates a Service.
func NewService(articles ArticleRepository, comments CommentRepository, topics TopicRepository, users UserRepository) *Service {
	return &Service{
		articles: articles,
		comments: comments,
		topics:   topics,
		users:    users,
	}
}

// ArticleListRequest carries the raw query-string parameters of an article
// listing. Absent values take the package defaults.
type ArticleListRequest struct {
	Topic  query.Optional
	SortBy query.Optional
	Order  query.Optional
	Limit  query.Optional
	Page   query.Optional
}

// parse validates the sort and window. An explicitly empty topic is treated
// like an absent one.
func (r ArticleListRequest) parse() (query.ArticleFilter, query.Sort, query.Page, error) {
	sort, err := query.ParseArticleSort(r.SortBy, r.Order)
	if err != nil {
		return query.ArticleFilter{}, query.Sort{}, query.Page{}, err
	}
	page, err := query.ParsePage(r.Limit, r.Page)
	if err != nil {
		return query.ArticleFilter{}, query.Sort{}, query.Page{}, err
	}
	return query.ArticleFilter{Topic: r.Topic.Value}, sort, page, nil
}

// guarded runs an existence guard and a dependent read concurrently and
// waits for both. A guard failure is reported ahead of a read failure.
func guarded(guard, read func() error) error {
	var guardErr error
	var g errgroup.Group
	g.Go(func() error {
		guardErr = guard()
		return guardErr
	})
	g.Go(read)
	err := g.Wait()
	if guardErr != nil {
		return guardErr
	}
	return err
}

// requireArticle fails with "Article ID not found" when id references no article.
func (s *Service) requireArticle(ctx context.Context, id int) error {
	a, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return apperr.NotFound(apperr.MsgArticleNotFound)
	}
	return nil
}

// requireTopic fails with "Topic not found" when slug references no topic.
func (s *Service) requireTopic(ctx context.Context, slug string) error {
	t, err := s.topics.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if t == nil {
		return apperr.NotFound(apperr.MsgTopicNotFound)
	}
	return nil
}

// ListArticles returns one window of articles and the total number of
// matches. A topic that does not exist yields an empty page, not an error.
func (s *Service) ListArticles(ctx context.Context, req ArticleListRequest) (*models.ArticlePage, error) {
	f, sort, page, err := req.parse()
	if err != nil {
		return nil, err
	}
	return s.articles.List(ctx, f, sort, page)
}

// GetArticle returns a single article with its body.
func (s *Service) GetArticle(ctx context.Context, rawID string) (*models.Article, error) {
	id, err := query.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	a, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound(apperr.MsgArticleNotFound)
	}
	return a, nil
}

// UpdateArticleVotes adds in.IncVotes to the article's votes.
func (s *Service) UpdateArticleVotes(ctx context.Context, rawID string, in models.VoteUpdate) (*models.Article, error) {
	id, err := query.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a, err := s.articles.AddVotes(ctx, id, *in.IncVotes)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound(apperr.MsgArticleNotFound)
	}
	return a, nil
}

// InsertArticle creates an article. Unknown authors and topics are rejected
// by the store as bad requests.
func (s *Service) InsertArticle(ctx context.Context, in models.NewArticle) (*models.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.articles.Create(ctx, in)
}

// DeleteArticle removes an article together with its comments.
func (s *Service) DeleteArticle(ctx context.Context, rawID string) error {
	id, err := query.ParseID(rawID)
	if err != nil {
		return err
	}
	deleted, err := s.articles.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound(apperr.MsgArticleNotFound)
	}
	return nil
}

// ListComments returns one window of an article's comments, newest first.
// An existing article without comments yields an empty slice.
func (s *Service) ListComments(ctx context.Context, rawID string, limit, page query.Optional) ([]models.Comment, error) {
	id, err := query.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	window, err := query.ParsePage(limit, page)
	if err != nil {
		return nil, err
	}

	var comments []models.Comment
	err = guarded(
		func() error { return s.requireArticle(ctx, id) },
		func() error {
			var err error
			comments, err = s.comments.ListByArticle(ctx, id, window)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// InsertComment adds a comment to an existing article. The article guard
// runs before the insert so an absent article is reported as not found
// rather than as a dangling reference.
func (s *Service) InsertComment(ctx context.Context, rawID string, in models.NewComment) (*models.Comment, error) {
	id, err := query.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireArticle(ctx, id); err != nil {
		return nil, err
	}
	return s.comments.Create(ctx, id, in)
}

// UpdateCommentVotes adds in.IncVotes to the comment's votes.
func (s *Service) UpdateCommentVotes(ctx context.Context, rawID string, in models.VoteUpdate) (*models.Comment, error) {
	id, err := query.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.comments.AddVotes(ctx, id, *in.IncVotes)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound(apperr.MsgCommentNotFound)
	}
	return c, nil
}

// DeleteComment removes a single comment.
func (s *Service) DeleteComment(ctx context.Context, rawID string) error {
	id, err := query.ParseID(rawID)
	if err != nil {
		return err
	}
	deleted, err := s.comments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound(apperr.MsgCommentNotFound)
	}
	return nil
}
