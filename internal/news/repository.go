package news

import (
	"context"

	"newsboard/internal/models"
	"newsboard/internal/query"
)

// The repositories below are satisfied by the Postgres stores in
// internal/store and by the in-memory fakes in internal/news/newstest.
// Lookups return (nil, nil) when nothing matches; deletes report whether a
// row was removed.

// ArticleRepository reads and writes articles.
type ArticleRepository interface {
	List(ctx context.Context, f query.ArticleFilter, sort query.Sort, page query.Page) (*models.ArticlePage, error)
	FindByID(ctx context.Context, id int) (*models.Article, error)
	AddVotes(ctx context.Context, id, delta int) (*models.Article, error)
	Create(ctx context.Context, in models.NewArticle) (*models.Article, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// CommentRepository reads and writes comments.
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int, page query.Page) ([]models.Comment, error)
	Create(ctx context.Context, articleID int, in models.NewComment) (*models.Comment, error)
	AddVotes(ctx context.Context, id, delta int) (*models.Comment, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// TopicRepository reads and writes topics.
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	FindBySlug(ctx context.Context, slug string) (*models.Topic, error)
	Create(ctx context.Context, in models.NewTopic) (*models.Topic, error)
	Delete(ctx context.Context, slug string) (bool, error)
}

// UserRepository reads users.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
