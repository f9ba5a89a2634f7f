package query

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsboard/internal/apperr"
)

func TestValidateSort(t *testing.T) {
	for by := range articleSortColumns {
		for _, order := range []string{"asc", "desc"} {
			assert.NoError(t, ValidateSort(by, order), "%s %s", by, order)
		}
	}

	tests := []struct {
		name  string
		by    string
		order string
	}{
		{"unlisted column", "body", "asc"},
		{"plausible column", "comment_id", "desc"},
		{"empty column", "", "desc"},
		{"injection attempt", "votes; DROP TABLE articles", "asc"},
		{"uppercase order", "votes", "DESC"},
		{"empty order", "votes", ""},
		{"uppercase column", "Votes", "asc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSort(tt.by, tt.order)
			require.Error(t, err)
			assert.True(t, apperr.IsBadRequest(err))
		})
	}
}

func TestParseArticleSortDefaults(t *testing.T) {
	s, err := ParseArticleSort(Optional{}, Optional{})
	require.NoError(t, err)
	assert.Equal(t, "created_at", s.By)
	assert.True(t, s.Desc)
	assert.Equal(t, "articles.created_at", s.Column())

	s, err = ParseArticleSort(Opt("comment_count"), Opt("asc"))
	require.NoError(t, err)
	assert.Equal(t, "comment_count", s.Column())
	assert.Equal(t, "asc", s.Order())

	_, err = ParseArticleSort(Opt(""), Optional{})
	assert.True(t, apperr.IsBadRequest(err), "explicitly empty sort_by must fail")
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"10", 10, false},
		{"007", 7, false},
		{"2147483647", 2147483647, false},
		{"2147483648", 0, true},
		{"0", 0, true},
		{"-1", 0, true},
		{"+1", 0, true},
		{"one", 0, true},
		{"5abc", 0, true},
		{"1.5", 0, true},
		{" 5", 0, true},
		{"", 0, true},
		{"99999999999999999999999", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePositiveInt(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsBadRequest(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePage(t *testing.T) {
	p, err := ParsePage(Optional{}, Optional{})
	require.NoError(t, err)
	assert.Equal(t, Page{Limit: 10, Number: 1}, p)
	assert.Equal(t, 0, p.Offset())

	p, err = ParsePage(Opt("5"), Opt("3"))
	require.NoError(t, err)
	assert.Equal(t, 10, p.Offset())

	_, err = ParsePage(Opt("one"), Optional{})
	assert.True(t, apperr.IsBadRequest(err))

	_, err = ParsePage(Optional{}, Opt("two"))
	assert.True(t, apperr.IsBadRequest(err))
}

func TestFromValues(t *testing.T) {
	v, err := url.ParseQuery("limit=&p=2")
	require.NoError(t, err)

	assert.Equal(t, Optional{Value: "", Set: true}, FromValues(v, "limit"))
	assert.Equal(t, Opt("2"), FromValues(v, "p"))
	assert.Equal(t, Optional{}, FromValues(v, "sort_by"))
}

func TestArticleListBuild(t *testing.T) {
	sql, args := ArticleList(
		ArticleFilter{Topic: "cats"},
		Sort{By: "votes"},
		Page{Limit: 5, Number: 2},
	).Build()

	assert.Contains(t, sql, "LEFT JOIN comments ON comments.article_id = articles.article_id")
	assert.Contains(t, sql, "WHERE articles.topic = $1")
	assert.Contains(t, sql, "GROUP BY articles.article_id")
	assert.Contains(t, sql, "ORDER BY articles.votes ASC, articles.article_id ASC")
	assert.True(t, strings.HasSuffix(sql, "LIMIT $2 OFFSET $3"), sql)
	assert.NotContains(t, sql, "articles.body")
	assert.Equal(t, []any{"cats", 5, 5}, args)
}

func TestArticleListWithoutTopic(t *testing.T) {
	sql, args := ArticleList(ArticleFilter{}, Sort{By: "comment_count", Desc: true}, DefaultWindow()).Build()

	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "ORDER BY comment_count DESC, articles.article_id DESC")
	assert.Contains(t, sql, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{10, 0}, args)
}

func TestArticleListCountMatchesFilter(t *testing.T) {
	list := ArticleList(ArticleFilter{Topic: "mitch"}, Sort{By: "created_at", Desc: true}, Page{Limit: 2, Number: 4})

	sql, args := list.BuildCount()
	assert.True(t, strings.HasPrefix(sql, "SELECT COUNT(*) FROM (SELECT "), sql)
	assert.True(t, strings.HasSuffix(sql, ") AS matched"), sql)
	assert.Contains(t, sql, "LEFT JOIN comments")
	assert.Contains(t, sql, "WHERE articles.topic = $1")
	assert.NotContains(t, sql, "ORDER BY")
	assert.NotContains(t, sql, "LIMIT")
	assert.Equal(t, []any{"mitch"}, args)

	// The total does not depend on the window.
	other, otherArgs := list.Paginate(Page{Limit: 50, Number: 1}).BuildCount()
	assert.Equal(t, sql, other)
	assert.Equal(t, args, otherArgs)
}

func TestArticleByIDIncludesBody(t *testing.T) {
	sql, args := ArticleByID(3).Build()

	assert.Contains(t, sql, "articles.body")
	assert.Contains(t, sql, "comment_count")
	assert.Contains(t, sql, "WHERE articles.article_id = $1")
	assert.NotContains(t, sql, "LIMIT")
	assert.Equal(t, []any{3}, args)
}

func TestCommentListBuild(t *testing.T) {
	sql, args := CommentList(1, Page{Limit: 5, Number: 2}).Build()

	assert.Equal(t,
		"SELECT comment_id, body, votes, author, article_id, created_at FROM comments"+
			" WHERE article_id = $1 ORDER BY created_at DESC, comment_id DESC LIMIT $2 OFFSET $3",
		sql)
	assert.Equal(t, []any{1, 5, 5}, args)
}

func TestFilterDoesNotAlias(t *testing.T) {
	base := Select{From: "articles"}.Filter("a", 1)
	first := base.Filter("b", 2)
	second := base.Filter("c", 3)

	assert.Len(t, first.Where, 2)
	assert.Equal(t, "b", first.Where[1].Column)
	assert.Equal(t, "c", second.Where[1].Column)
}
