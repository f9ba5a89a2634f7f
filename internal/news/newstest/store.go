// Package newstest provides an in-memory implementation of the news
// repositories. It mirrors the Postgres stores closely enough for service
// and handler tests: foreign keys are checked, topic deletes are
// restricted, comment counts are computed on read, and listings honour the
// same sort, tie-break and window rules.
package newstest

import (
	"cmp"
	"context"
	"math"
	"slices"
	"sync"
	"time"

	"newsboard/internal/apperr"
	"newsboard/internal/models"
	"newsboard/internal/query"
)

// Store holds the fake tables. The zero value is not usable; call New or Seeded.
type Store struct {
	mu       sync.Mutex
	topics   []models.Topic
	users    []models.User
	articles []models.Article
	comments []models.Comment

	nextArticleID int
	nextCommentID int
	clock         time.Time
	failures      map[string]error
}

// New returns an empty store.
func New() *Store {
	return &Store{
		nextArticleID: 1,
		nextCommentID: 1,
		clock:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		failures:      make(map[string]error),
	}
}

// Fail makes every later call to op return err. op is "<repo>.<Method>",
// for example "comments.ListByArticle".
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *Store) failure(op string) error {
	return s.failures[op]
}

// now returns a strictly increasing timestamp for inserts.
func (s *Store) now() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

// AddTopic, AddUser, AddArticle and AddComment insert fixture rows without
// any checks. Articles and comments get the next id; the assigned id is returned.

func (s *Store) AddTopic(t models.Topic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = append(s.topics, t)
}

func (s *Store) AddUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
}

func (s *Store) AddArticle(a models.Article) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ArticleID = s.nextArticleID
	s.nextArticleID++
	if a.ArticleImgURL == "" {
		a.ArticleImgURL = models.DefaultArticleImgURL
	}
	s.articles = append(s.articles, a)
	return a.ArticleID
}

func (s *Store) AddComment(c models.Comment) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.CommentID = s.nextCommentID
	s.nextCommentID++
	s.comments = append(s.comments, c)
	return c.CommentID
}

// Articles returns the article repository.
func (s *Store) Articles() *ArticleRepo { return &ArticleRepo{s: s} }

// Comments returns the comment repository.
func (s *Store) Comments() *CommentRepo { return &CommentRepo{s: s} }

// Topics returns the topic repository.
func (s *Store) Topics() *TopicRepo { return &TopicRepo{s: s} }

// Users returns the user repository.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

func (s *Store) hasUser(username string) bool {
	return slices.ContainsFunc(s.users, func(u models.User) bool { return u.Username == username })
}

// addVotes applies delta within the int4 range of the votes columns. An
// out-of-range delta or total is a bad request, as in PostgreSQL.
func addVotes(votes, delta int) (int, error) {
	if delta < math.MinInt32 || delta > math.MaxInt32 {
		return 0, apperr.BadRequest("")
	}
	sum := votes + delta
	if sum < math.MinInt32 || sum > math.MaxInt32 {
		return 0, apperr.BadRequest("")
	}
	return sum, nil
}

func (s *Store) hasTopic(slug string) bool {
	return slices.ContainsFunc(s.topics, func(t models.Topic) bool { return t.Slug == slug })
}

func (s *Store) articleIndex(id int) int {
	return slices.IndexFunc(s.articles, func(a models.Article) bool { return a.ArticleID == id })
}

func (s *Store) commentIndex(id int) int {
	return slices.IndexFunc(s.comments, func(c models.Comment) bool { return c.CommentID == id })
}

func (s *Store) commentCount(articleID int) int {
	n := 0
	for _, c := range s.comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n
}

// withCount returns a copy of the stored article with its live comment count.
func (s *Store) withCount(i int) models.Article {
	a := s.articles[i]
	a.CommentCount = s.commentCount(a.ArticleID)
	return a
}

// window slices items to the rows of page p.
func window[T any](items []T, p query.Page) []T {
	if p.Limit <= 0 {
		return items
	}
	start := p.Offset()
	if start >= len(items) {
		return items[:0]
	}
	end := min(start+p.Limit, len(items))
	return items[start:end]
}

// ArticleRepo implements news.ArticleRepository.
type ArticleRepo struct{ s *Store }

func compareArticles(by string, a, b models.Article) int {
	switch by {
	case "article_id":
		return cmp.Compare(a.ArticleID, b.ArticleID)
	case "author":
		return cmp.Compare(a.Author, b.Author)
	case "title":
		return cmp.Compare(a.Title, b.Title)
	case "topic":
		return cmp.Compare(a.Topic, b.Topic)
	case "created_at":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "votes":
		return cmp.Compare(a.Votes, b.Votes)
	case "article_img_url":
		return cmp.Compare(a.ArticleImgURL, b.ArticleImgURL)
	case "comment_count":
		return cmp.Compare(a.CommentCount, b.CommentCount)
	}
	return 0
}

func (r *ArticleRepo) List(_ context.Context, f query.ArticleFilter, sort query.Sort, page query.Page) (*models.ArticlePage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("articles.List"); err != nil {
		return nil, err
	}

	matched := []models.Article{}
	for i, a := range r.s.articles {
		if f.Topic != "" && a.Topic != f.Topic {
			continue
		}
		row := r.s.withCount(i)
		row.Body = ""
		matched = append(matched, row)
	}

	slices.SortFunc(matched, func(a, b models.Article) int {
		c := compareArticles(sort.By, a, b)
		if c == 0 {
			c = cmp.Compare(a.ArticleID, b.ArticleID)
		}
		if sort.Desc {
			return -c
		}
		return c
	})

	return &models.ArticlePage{
		Articles:   slices.Clone(window(matched, page)),
		TotalCount: len(matched),
	}, nil
}

func (r *ArticleRepo) FindByID(_ context.Context, id int) (*models.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("articles.FindByID"); err != nil {
		return nil, err
	}

	i := r.s.articleIndex(id)
	if i < 0 {
		return nil, nil
	}
	a := r.s.withCount(i)
	return &a, nil
}

func (r *ArticleRepo) AddVotes(_ context.Context, id, delta int) (*models.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("articles.AddVotes"); err != nil {
		return nil, err
	}

	i := r.s.articleIndex(id)
	if i < 0 {
		return nil, nil
	}
	votes, err := addVotes(r.s.articles[i].Votes, delta)
	if err != nil {
		return nil, err
	}
	r.s.articles[i].Votes = votes
	a := r.s.withCount(i)
	return &a, nil
}

func (r *ArticleRepo) Create(_ context.Context, in models.NewArticle) (*models.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("articles.Create"); err != nil {
		return nil, err
	}

	if !r.s.hasUser(*in.Author) || !r.s.hasTopic(*in.Topic) {
		return nil, apperr.BadRequest("")
	}
	a := models.Article{
		ArticleID:     r.s.nextArticleID,
		Author:        *in.Author,
		Title:         *in.Title,
		Topic:         *in.Topic,
		Body:          *in.Body,
		CreatedAt:     r.s.now(),
		ArticleImgURL: in.ImgURL(),
	}
	r.s.nextArticleID++
	r.s.articles = append(r.s.articles, a)
	return &a, nil
}

func (r *ArticleRepo) Delete(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("articles.Delete"); err != nil {
		return false, err
	}

	i := r.s.articleIndex(id)
	if i < 0 {
		return false, nil
	}
	r.s.comments = slices.DeleteFunc(r.s.comments, func(c models.Comment) bool { return c.ArticleID == id })
	r.s.articles = slices.Delete(r.s.articles, i, i+1)
	return true, nil
}

// CommentRepo implements news.CommentRepository.
type CommentRepo struct{ s *Store }

func (r *CommentRepo) ListByArticle(_ context.Context, articleID int, page query.Page) ([]models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("comments.ListByArticle"); err != nil {
		return nil, err
	}

	matched := []models.Comment{}
	for _, c := range r.s.comments {
		if c.ArticleID == articleID {
			matched = append(matched, c)
		}
	}
	slices.SortFunc(matched, func(a, b models.Comment) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.CommentID, a.CommentID)
	})
	return slices.Clone(window(matched, page)), nil
}

func (r *CommentRepo) Create(_ context.Context, articleID int, in models.NewComment) (*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("comments.Create"); err != nil {
		return nil, err
	}

	if !r.s.hasUser(*in.Username) || r.s.articleIndex(articleID) < 0 {
		return nil, apperr.BadRequest("")
	}
	c := models.Comment{
		CommentID: r.s.nextCommentID,
		Body:      *in.Body,
		Author:    *in.Username,
		ArticleID: articleID,
		CreatedAt: r.s.now(),
	}
	r.s.nextCommentID++
	r.s.comments = append(r.s.comments, c)
	return &c, nil
}

func (r *CommentRepo) AddVotes(_ context.Context, id, delta int) (*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("comments.AddVotes"); err != nil {
		return nil, err
	}

	i := r.s.commentIndex(id)
	if i < 0 {
		return nil, nil
	}
	votes, err := addVotes(r.s.comments[i].Votes, delta)
	if err != nil {
		return nil, err
	}
	r.s.comments[i].Votes = votes
	c := r.s.comments[i]
	return &c, nil
}

func (r *CommentRepo) Delete(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("comments.Delete"); err != nil {
		return false, err
	}

	i := r.s.commentIndex(id)
	if i < 0 {
		return false, nil
	}
	r.s.comments = slices.Delete(r.s.comments, i, i+1)
	return true, nil
}

// TopicRepo implements news.TopicRepository.
type TopicRepo struct{ s *Store }

func (r *TopicRepo) List(_ context.Context) ([]models.Topic, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("topics.List"); err != nil {
		return nil, err
	}

	out := slices.Clone(r.s.topics)
	if out == nil {
		out = []models.Topic{}
	}
	slices.SortFunc(out, func(a, b models.Topic) int { return cmp.Compare(a.Slug, b.Slug) })
	return out, nil
}

func (r *TopicRepo) FindBySlug(_ context.Context, slug string) (*models.Topic, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("topics.FindBySlug"); err != nil {
		return nil, err
	}

	for _, t := range r.s.topics {
		if t.Slug == slug {
			return &t, nil
		}
	}
	return nil, nil
}

func (r *TopicRepo) Create(_ context.Context, in models.NewTopic) (*models.Topic, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("topics.Create"); err != nil {
		return nil, err
	}

	if r.s.hasTopic(*in.Slug) {
		return nil, apperr.Conflict(apperr.MsgTopicExists)
	}
	t := models.Topic{Slug: *in.Slug, Description: *in.Description}
	r.s.topics = append(r.s.topics, t)
	return &t, nil
}

func (r *TopicRepo) Delete(_ context.Context, slug string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("topics.Delete"); err != nil {
		return false, err
	}

	i := slices.IndexFunc(r.s.topics, func(t models.Topic) bool { return t.Slug == slug })
	if i < 0 {
		return false, nil
	}
	if slices.ContainsFunc(r.s.articles, func(a models.Article) bool { return a.Topic == slug }) {
		return false, apperr.Conflict(apperr.MsgTopicInUse)
	}
	r.s.topics = slices.Delete(r.s.topics, i, i+1)
	return true, nil
}

// UserRepo implements news.UserRepository.
type UserRepo struct{ s *Store }

func (r *UserRepo) List(_ context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users.List"); err != nil {
		return nil, err
	}

	out := slices.Clone(r.s.users)
	if out == nil {
		out = []models.User{}
	}
	slices.SortFunc(out, func(a, b models.User) int { return cmp.Compare(a.Username, b.Username) })
	return out, nil
}

func (r *UserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users.FindByUsername"); err != nil {
		return nil, err
	}

	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}
