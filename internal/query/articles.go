package query

// articleListColumns are the columns returned by article listings. body is
// left out; it is only returned by the single-article fetch.
var articleListColumns = []string{
	"articles.article_id",
	"articles.author",
	"articles.title",
	"articles.topic",
	"articles.created_at",
	"articles.votes",
	"articles.article_img_url",
	"COUNT(comments.comment_id)::INT AS comment_count",
}

// articleBase selects every article once with its live comment count. The
// LEFT JOIN keeps articles without comments (count 0).
func articleBase(columns []string) Select {
	return Select{
		Columns: columns,
		From:    "articles",
		Joins:   []string{"LEFT JOIN comments ON comments.article_id = articles.article_id"},
		GroupBy: []string{"articles.article_id"},
	}
}

// ArticleFilter narrows an article listing. An empty Topic means all topics.
type ArticleFilter struct {
	Topic string
}

// ArticleList builds the listing query for the given filter, sort and window.
// The topic is matched exactly and bound as a parameter.
func ArticleList(f ArticleFilter, s Sort, p Page) Select {
	q := articleBase(articleListColumns)
	if f.Topic != "" {
		q = q.Filter("articles.topic", f.Topic)
	}
	return q.Order(s.Column(), s.Desc, "articles.article_id").Paginate(p)
}

// ArticleByID builds the single-article query, body included.
func ArticleByID(id int) Select {
	cols := make([]string, 0, len(articleListColumns)+1)
	cols = append(cols, articleListColumns[:4]...)
	cols = append(cols, "articles.body")
	cols = append(cols, articleListColumns[4:]...)
	return articleBase(cols).Filter("articles.article_id", id)
}

// CommentList builds the newest-first comment listing for one article.
func CommentList(articleID int, p Page) Select {
	return Select{
		Columns: []string{"comment_id", "body", "votes", "author", "article_id", "created_at"},
		From:    "comments",
	}.Filter("article_id", articleID).
		Order("created_at", true, "comment_id").
		Paginate(p)
}
