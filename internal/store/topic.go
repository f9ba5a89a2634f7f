// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"newsboard/internal/apperr"
	"newsboard/internal/models"
)

// TopicStore manages topics in the database.
type TopicStore struct {
	db *sql.DB
}

// NewTopicStore returns a new TopicStore.
func NewTopicStore(db *sql.DB) *TopicStore {
	return &TopicStore{db: db}
}

// List returns all topics ordered by slug.
func (s *TopicStore) List(ctx context.Context) ([]models.Topic, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug, description FROM topics ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	items := []models.Topic{}
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// FindBySlug retrieves a topic. Returns nil if not found.
func (s *TopicStore) FindBySlug(ctx context.Context, slug string) (*models.Topic, error) {
	t := &models.Topic{}
	err := s.db.QueryRowContext(ctx,
		`SELECT slug, description FROM topics WHERE slug = $1`, slug,
	).Scan(&t.Slug, &t.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find topic by slug: %w", err)
	}
	return t, nil
}

// Create inserts a new topic. A duplicate slug is a conflict.
func (s *TopicStore) Create(ctx context.Context, in models.NewTopic) (*models.Topic, error) {
	t := &models.Topic{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO topics (slug, description)
		VALUES ($1, $2)
		RETURNING slug, description
	`, *in.Slug, *in.Description).Scan(&t.Slug, &t.Description)
	if pgCode(err) == codeUniqueViolation {
		return nil, apperr.Wrap(apperr.KindConflict, apperr.MsgTopicExists, err)
	}
	if err != nil {
		return nil, classify("create topic", err)
	}
	return t, nil
}

// Delete removes a topic. It reports false if no topic matched. Topics that
// still have articles are protected by ON DELETE RESTRICT and fail with a
// conflict.
func (s *TopicStore) Delete(ctx context.Context, slug string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM topics WHERE slug = $1`, slug)
	if pgCode(err) == codeForeignKeyViolation {
		return false, apperr.Wrap(apperr.KindConflict, apperr.MsgTopicInUse, err)
	}
	if err != nil {
		return false, classify("delete topic", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete topic rows affected: %w", err)
	}
	return n > 0, nil
}
