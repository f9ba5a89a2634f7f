// Package query holds the validation rules for list parameters and the
// query descriptor that compiles into parameterized SQL. Identifiers that end
// up in ORDER BY never come from the request directly: they are looked up in
// a whitelist and replaced by a constant SQL expression.
package query

import (
	"math"
	"net/url"
	"strconv"

	"newsboard/internal/apperr"
)

// Defaults applied when a list parameter is absent.
const (
	DefaultArticleSort = "created_at"
	DefaultOrder       = "desc"
	DefaultLimit       = 10
	DefaultPage        = 1
)

// articleSortColumns maps every sortable article field to the SQL expression
// used in ORDER BY. comment_count is the aggregate alias from the list query.
var articleSortColumns = map[string]string{
	"article_id":      "articles.article_id",
	"author":          "articles.author",
	"title":           "articles.title",
	"topic":           "articles.topic",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

// Optional is a raw query-string value that may be absent. An explicitly
// empty value (`?limit=`) is Set with an empty Value and fails validation.
type Optional struct {
	Value string
	Set   bool
}

// Opt returns a present value.
func Opt(v string) Optional { return Optional{Value: v, Set: true} }

// FromValues reads key from a parsed query string.
func FromValues(v url.Values, key string) Optional {
	if !v.Has(key) {
		return Optional{}
	}
	return Opt(v.Get(key))
}

// Sort is a validated sort field and direction.
type Sort struct {
	By   string // whitelisted field name
	Desc bool
}

// Column returns the SQL expression for the sort field.
func (s Sort) Column() string { return articleSortColumns[s.By] }

// Order returns "asc" or "desc".
func (s Sort) Order() string {
	if s.Desc {
		return "desc"
	}
	return "asc"
}

// Page is a validated pagination window.
type Page struct {
	Limit  int
	Number int
}

// Offset returns the number of rows skipped before the window.
func (p Page) Offset() int { return (p.Number - 1) * p.Limit }

// DefaultWindow returns the first page with the default limit.
func DefaultWindow() Page { return Page{Limit: DefaultLimit, Number: DefaultPage} }

// ValidateSort checks a sort column and order against the whitelist.
// Both values are case-sensitive; anything unlisted, including "", fails.
func ValidateSort(by, order string) error {
	if _, ok := articleSortColumns[by]; !ok {
		return apperr.BadRequest("")
	}
	if order != "asc" && order != "desc" {
		return apperr.BadRequest("")
	}
	return nil
}

// ParseArticleSort applies defaults to absent values and validates the rest.
func ParseArticleSort(by, order Optional) (Sort, error) {
	b, o := DefaultArticleSort, DefaultOrder
	if by.Set {
		b = by.Value
	}
	if order.Set {
		o = order.Value
	}
	if err := ValidateSort(b, o); err != nil {
		return Sort{}, err
	}
	return Sort{By: b, Desc: o == "desc"}, nil
}

// ParsePage applies defaults to absent values and requires present values
// to be positive base-10 integers.
func ParsePage(limit, page Optional) (Page, error) {
	p := DefaultWindow()
	if limit.Set {
		n, err := ParsePositiveInt(limit.Value)
		if err != nil {
			return Page{}, err
		}
		p.Limit = n
	}
	if page.Set {
		n, err := ParsePositiveInt(page.Value)
		if err != nil {
			return Page{}, err
		}
		p.Number = n
	}
	return p, nil
}

// ParsePositiveInt parses s as a strictly positive base-10 integer made only
// of ASCII digits. Signs, spaces, trailing characters and values above
// MaxInt32 are rejected.
func ParsePositiveInt(s string) (int, error) {
	if s == "" {
		return 0, apperr.BadRequest("")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, apperr.BadRequest("")
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > math.MaxInt32 {
		return 0, apperr.BadRequest("")
	}
	return n, nil
}

// ParseID parses a path identifier. Malformed ids fail here so the store
// never sees them.
func ParseID(s string) (int, error) {
	return ParsePositiveInt(s)
}
