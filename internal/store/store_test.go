// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"newsboard/internal/database"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "newsboard")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "newsboard_test")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// fixture is a private corner of the shared database: one topic, one user
// and whatever articles a test adds. Names are unique per test so packages
// can run concurrently against the same database.
type fixture struct {
	db    *sql.DB
	topic string
	user  string
}

func newFixture(t *testing.T, db *sql.DB) *fixture {
	t.Helper()
	suffix := uuid.NewString()[:8]
	f := &fixture{db: db, topic: "t-" + suffix, user: "u_" + suffix}

	if _, err := db.Exec(`INSERT INTO topics (slug, description) VALUES ($1, 'test topic')`, f.topic); err != nil {
		t.Fatalf("insert fixture topic: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO users (username, name) VALUES ($1, 'Test User')`, f.user); err != nil {
		t.Fatalf("insert fixture user: %v", err)
	}

	t.Cleanup(func() {
		db.Exec(`DELETE FROM comments WHERE author = $1
			OR article_id IN (SELECT article_id FROM articles WHERE topic = $2)`, f.user, f.topic)
		db.Exec(`DELETE FROM articles WHERE topic = $1 OR author = $2`, f.topic, f.user)
		db.Exec(`DELETE FROM topics WHERE slug = $1`, f.topic)
		db.Exec(`DELETE FROM users WHERE username = $1`, f.user)
	})
	return f
}

// article inserts an article in the fixture topic and returns its id.
func (f *fixture) article(t *testing.T, title string, votes int, createdAt time.Time) int {
	t.Helper()
	var id int
	err := f.db.QueryRow(`
		INSERT INTO articles (title, topic, author, body, votes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING article_id
	`, title, f.topic, f.user, "body of "+title, votes, createdAt).Scan(&id)
	if err != nil {
		t.Fatalf("insert fixture article: %v", err)
	}
	return id
}

// comment inserts a comment on articleID and returns its id.
func (f *fixture) comment(t *testing.T, articleID int, body string, createdAt time.Time) int {
	t.Helper()
	var id int
	err := f.db.QueryRow(`
		INSERT INTO comments (body, article_id, author, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING comment_id
	`, body, articleID, f.user, createdAt).Scan(&id)
	if err != nil {
		t.Fatalf("insert fixture comment: %v", err)
	}
	return id
}

func ptr[T any](v T) *T { return &v }
