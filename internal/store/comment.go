// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"newsboard/internal/models"
	"newsboard/internal/query"
)

// CommentStore handles all comment-related database operations.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore creates a new CommentStore with the given database connection.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

const commentColumns = `comment_id, body, votes, author, article_id, created_at`

// scanComment scans a row of commentColumns.
func scanComment(scanner interface{ Scan(...any) error }) (*models.Comment, error) {
	var c models.Comment
	err := scanner.Scan(&c.CommentID, &c.Body, &c.Votes, &c.Author, &c.ArticleID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByArticle returns one window of an article's comments, newest first.
// It does not check that the article exists.
func (s *CommentStore) ListByArticle(ctx context.Context, articleID int, page query.Page) ([]models.Comment, error) {
	sqlStr, args := query.CommentList(articleID, page).Build()
	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, classify("list comments", err)
	}
	defer rows.Close()

	items := []models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// Create inserts a comment with zero votes. An unknown username fails the
// foreign key and is reported as a bad request.
func (s *CommentStore) Create(ctx context.Context, articleID int, in models.NewComment) (*models.Comment, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (body, votes, author, article_id)
		VALUES ($1, 0, $2, $3)
		RETURNING `+commentColumns,
		*in.Body, *in.Username, articleID,
	)
	c, err := scanComment(row)
	if err != nil {
		return nil, classify("create comment", err)
	}
	return c, nil
}

// AddVotes adds delta to the stored vote count in a single UPDATE.
// Returns nil if the comment does not exist.
func (s *CommentStore) AddVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE comments SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING `+commentColumns,
		delta, id,
	)
	c, err := scanComment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, classify("add comment votes", err)
	}
	return c, nil
}

// Delete removes a comment by ID. It reports false if no comment matched.
func (s *CommentStore) Delete(ctx context.Context, id int) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		return false, classify("delete comment", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete comment rows affected: %w", err)
	}
	return n > 0, nil
}
