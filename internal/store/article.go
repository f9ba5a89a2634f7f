// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access for topics, articles, comments and
// users. Each store struct wraps a *sql.DB and exposes typed query methods.
// Lookups return (nil, nil) when no row matches; callers decide whether that
// is an error.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/sync/errgroup"

	"newsboard/internal/models"
	"newsboard/internal/query"
)

// ArticleStore handles all article-related database operations.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore creates a new ArticleStore with the given database connection.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// articleColumns is the full column list used by RETURNING clauses.
const articleColumns = `article_id, author, title, topic, body, created_at, votes, article_img_url`

// scanArticleSummary scans a listing row (no body).
func scanArticleSummary(scanner interface{ Scan(...any) error }) (models.Article, error) {
	var a models.Article
	err := scanner.Scan(
		&a.ArticleID, &a.Author, &a.Title, &a.Topic,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	return a, err
}

// scanArticle scans a full row: articleColumns followed by comment_count.
func scanArticle(scanner interface{ Scan(...any) error }) (*models.Article, error) {
	var a models.Article
	err := scanner.Scan(
		&a.ArticleID, &a.Author, &a.Title, &a.Topic, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns one window of articles matching f, ordered by sort, together
// with the number of matching articles before windowing. The count and the
// page are independent reads and run concurrently.
func (s *ArticleStore) List(ctx context.Context, f query.ArticleFilter, sort query.Sort, page query.Page) (*models.ArticlePage, error) {
	q := query.ArticleList(f, sort, page)
	result := &models.ArticlePage{Articles: []models.Article{}}

	var g errgroup.Group
	g.Go(func() error {
		countSQL, countArgs := q.BuildCount()
		if err := s.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
			return classify("count articles", err)
		}
		return nil
	})
	g.Go(func() error {
		listSQL, listArgs := q.Build()
		rows, err := s.db.QueryContext(ctx, listSQL, listArgs...)
		if err != nil {
			return classify("list articles", err)
		}
		defer rows.Close()

		for rows.Next() {
			a, err := scanArticleSummary(rows)
			if err != nil {
				return fmt.Errorf("scan article: %w", err)
			}
			result.Articles = append(result.Articles, a)
		}
		return rows.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// FindByID retrieves an article with its body and comment count. Returns nil if not found.
func (s *ArticleStore) FindByID(ctx context.Context, id int) (*models.Article, error) {
	sqlStr, args := query.ArticleByID(id).Build()
	a, err := scanArticle(s.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, classify("find article by id", err)
	}
	return a, nil
}

// AddVotes adds delta to the stored vote count in a single UPDATE so
// concurrent increments are never lost. Returns nil if the article does not exist.
func (s *ArticleStore) AddVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	row := s.db.QueryRowContext(ctx, `
		WITH updated AS (
			UPDATE articles SET votes = votes + $1
			WHERE article_id = $2
			RETURNING `+articleColumns+`
		)
		SELECT u.article_id, u.author, u.title, u.topic, u.body, u.created_at,
		       u.votes, u.article_img_url,
		       (SELECT COUNT(*)::INT FROM comments c WHERE c.article_id = u.article_id) AS comment_count
		FROM updated u
	`, delta, id)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, classify("add article votes", err)
	}
	return a, nil
}

// Create inserts a new article with zero votes. created_at is assigned by
// the database. An unknown author or topic fails the foreign keys and is
// reported as a bad request.
func (s *ArticleStore) Create(ctx context.Context, in models.NewArticle) (*models.Article, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO articles (author, title, body, topic, votes, article_img_url)
		VALUES ($1, $2, $3, $4, 0, $5)
		RETURNING `+articleColumns+`, 0 AS comment_count
	`, *in.Author, *in.Title, *in.Body, *in.Topic, in.ImgURL())
	a, err := scanArticle(row)
	if err != nil {
		return nil, classify("create article", err)
	}
	return a, nil
}

// Delete removes an article's comments and then the article in one
// transaction. It reports false, with nothing changed, if the article did
// not exist.
func (s *ArticleStore) Delete(ctx context.Context, id int) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE article_id = $1`, id); err != nil {
		return false, classify("delete article comments", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE article_id = $1`, id)
	if err != nil {
		return false, classify("delete article", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete article rows affected: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete article: %w", err)
	}
	return true, nil
}
