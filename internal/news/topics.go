package news

import (
	"context"

	"newsboard/internal/apperr"
	"newsboard/internal/models"
	"newsboard/internal/query"
)

// ListTopics returns every topic.
func (s *Service) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topics.List(ctx)
}

// InsertTopic creates a topic. The slug must already be in canonical form.
func (s *Service) InsertTopic(ctx context.Context, in models.NewTopic) (*models.Topic, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.topics.Create(ctx, in)
}

// DeleteTopic removes a topic that has no articles.
func (s *Service) DeleteTopic(ctx context.Context, slug string) error {
	deleted, err := s.topics.Delete(ctx, slug)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound(apperr.MsgTopicNotFound)
	}
	return nil
}

// ListTopicArticles lists the articles of one topic. Unlike the topic filter
// of ListArticles, an unknown slug fails with "Topic not found". The Topic
// field of req is ignored.
func (s *Service) ListTopicArticles(ctx context.Context, slug string, req ArticleListRequest) (*models.ArticlePage, error) {
	req.Topic = query.Opt(slug)
	f, sort, page, err := req.parse()
	if err != nil {
		return nil, err
	}

	var result *models.ArticlePage
	err = guarded(
		func() error { return s.requireTopic(ctx, slug) },
		func() error {
			var err error
			result, err = s.articles.List(ctx, f, sort, page)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListUsers returns every user.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// GetUser returns a single user.
func (s *Service) GetUser(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound(apperr.MsgUserNotFound)
	}
	return u, nil
}
