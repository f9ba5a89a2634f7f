package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type seedTopic struct{ slug, description string }

type seedUser struct{ username, name, avatarURL string }

type seedArticle struct {
	title, topic, author, body string
	createdAt                  time.Time
	votes                      int
}

type seedComment struct {
	body      string
	articleID int
	author    string
	votes     int
	createdAt time.Time
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Development data. Article and comment ids are assigned in slice order on
// an empty database, so article 1 has eleven comments, article 2 has none
// and the paper topic has no articles.
var (
	seedTopics = []seedTopic{
		{"mitch", "The man, the Mitch, the legend"},
		{"cats", "Not dogs"},
		{"paper", "what books are made of"},
	}

	seedUsers = []seedUser{
		{"butter_bridge", "jonny", "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{"icellusedkars", "sam", "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{"rogersop", "paul", "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{"lurker", "do_nothing", "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
	}

	seedArticles = []seedArticle{
		{"Living in the shadow of a great man", "mitch", "butter_bridge", "I find this existence challenging", ts("2020-07-09T20:11:00Z"), 100},
		{"Sony Vaio; or, The Laptop", "mitch", "icellusedkars", "Call me Mitchell. Some years ago I bought a laptop.", ts("2020-10-16T05:03:00Z"), 0},
		{"Eight pug gifs that remind me of mitch", "mitch", "icellusedkars", "some gifs", ts("2020-11-03T09:12:00Z"), 0},
		{"Student SUES Mitch!", "mitch", "rogersop", "We all love Mitch and his wonderful, unique typing style.", ts("2020-05-06T01:14:00Z"), 0},
		{"UNCOVERED: catspiracy to bring down democracy", "cats", "rogersop", "Bastet walks amongst us, and the cats are taking arms!", ts("2020-08-03T13:14:00Z"), 0},
		{"A", "mitch", "icellusedkars", "Delicious tin of cat food", ts("2020-10-18T01:00:00Z"), 0},
		{"Z", "mitch", "icellusedkars", "I was hungry.", ts("2020-01-07T14:08:00Z"), 0},
	}

	seedComments = []seedComment{
		{"Oh, I've got compassion running out of my nose, pal!", 1, "butter_bridge", 16, ts("2020-04-06T12:17:00Z")},
		{"The beautiful thing about treasure is that it exists.", 1, "butter_bridge", 14, ts("2020-10-31T03:03:00Z")},
		{"Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones.", 1, "icellusedkars", 100, ts("2020-03-01T01:13:00Z")},
		{"I carry a log. Is it funny to you? It is not to me.", 1, "icellusedkars", -100, ts("2020-02-23T12:01:00Z")},
		{"I hate streaming noses", 1, "icellusedkars", 0, ts("2020-11-03T21:00:00Z")},
		{"git push origin master", 3, "icellusedkars", 0, ts("2020-06-20T07:24:00Z")},
		{"Ambidextrous marsupial", 3, "icellusedkars", 0, ts("2020-09-19T23:10:00Z")},
		{"What do you see? I have no idea where this will lead us.", 5, "icellusedkars", 16, ts("2020-06-15T10:25:00Z")},
		{"Lobster pot", 1, "icellusedkars", 0, ts("2020-05-15T20:19:00Z")},
		{"Delicious crackerbreads", 1, "icellusedkars", 0, ts("2020-04-14T20:19:00Z")},
		{"Superficially charming", 1, "icellusedkars", 0, ts("2020-01-01T03:08:00Z")},
		{"Massive intercranial brain haemorrhage", 1, "icellusedkars", 0, ts("2020-03-02T07:10:00Z")},
		{"Fruit pastilles", 1, "icellusedkars", 0, ts("2020-06-15T17:00:00Z")},
		{"This morning, I showered for nine minutes.", 1, "lurker", 0, ts("2020-07-21T00:20:00Z")},
	}
)

// Seed populates an empty database with development data. It is a no-op
// when any topic already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM topics").Scan(&count); err != nil {
		return fmt.Errorf("seed check topics: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	return insertSeed(context.Background(), db)
}

// Reseed truncates every news table, restarts the id sequences and inserts
// the development data again.
func Reseed(db *sql.DB) error {
	if _, err := db.Exec(`TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("seed truncate: %w", err)
	}
	return insertSeed(context.Background(), db)
}

func insertSeed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, t := range seedTopics {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO topics (slug, description) VALUES ($1, $2)`,
			t.slug, t.description,
		); err != nil {
			return fmt.Errorf("seed insert topic %s: %w", t.slug, err)
		}
	}

	for _, u := range seedUsers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`,
			u.username, u.name, u.avatarURL,
		); err != nil {
			return fmt.Errorf("seed insert user %s: %w", u.username, err)
		}
	}

	for _, a := range seedArticles {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO articles (title, topic, author, body, created_at, votes)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, a.title, a.topic, a.author, a.body, a.createdAt, a.votes); err != nil {
			return fmt.Errorf("seed insert article %q: %w", a.title, err)
		}
	}

	for _, c := range seedComments {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO comments (body, article_id, author, votes, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, c.body, c.articleID, c.author, c.votes, c.createdAt); err != nil {
			return fmt.Errorf("seed insert comment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded",
		"topics", len(seedTopics),
		"users", len(seedUsers),
		"articles", len(seedArticles),
		"comments", len(seedComments),
	)
	return nil
}
