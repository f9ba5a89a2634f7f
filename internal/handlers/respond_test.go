package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsboard/internal/apperr"
	"newsboard/internal/models"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"bad request", apperr.BadRequest(""), http.StatusBadRequest, "Bad request"},
		{"not found", apperr.NotFound(apperr.MsgArticleNotFound), http.StatusNotFound, "Article ID not found"},
		{"conflict", apperr.Conflict(apperr.MsgTopicExists), http.StatusConflict, "Topic already exists"},
		{"wrapped not found", errors.Join(apperr.NotFound(apperr.MsgCommentNotFound)), http.StatusNotFound, "Comment ID not found"},
		{"internal hides text", errors.New("pq: connection refused"), http.StatusInternalServerError, apperr.MsgInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handleServiceError(rr, httptest.NewRequest(http.MethodGet, "/api/x", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, map[string]string{"msg": tt.wantMsg}, body)
		})
	}
}

func TestDecodeBody(t *testing.T) {
	decode := func(body string) (models.VoteUpdate, error) {
		var in models.VoteUpdate
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
		err := decodeBody(httptest.NewRecorder(), req, &in)
		return in, err
	}

	in, err := decode(`{"inc_votes": -3}`)
	require.NoError(t, err)
	require.NotNil(t, in.IncVotes)
	assert.Equal(t, -3, *in.IncVotes)

	in, err = decode(`{}`)
	require.NoError(t, err)
	assert.Nil(t, in.IncVotes, "absent field stays nil")

	for _, body := range []string{``, `{`, `{"inc_votes": "cat"}`, `{"inc_votes": 1.5}`, `[1]`} {
		_, err := decode(body)
		assert.True(t, apperr.IsBadRequest(err), "body %q", body)
	}
}

func TestDecodeBodyTooLarge(t *testing.T) {
	var in models.NewComment
	big := `{"username":"a","body":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))

	err := decodeBody(httptest.NewRecorder(), req, &in)
	require.True(t, apperr.IsBadRequest(err))
	assert.Equal(t, "Request body too large", apperr.Message(err))
}

func TestEndpoints(t *testing.T) {
	rr := httptest.NewRecorder()
	Endpoints(rr, httptest.NewRequest(http.MethodGet, "/api", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Endpoints map[string]struct {
			Description     string         `json:"description"`
			Queries         []string       `json:"queries"`
			BodyFormat      map[string]any `json:"bodyFormat"`
			ExampleResponse map[string]any `json:"exampleResponse"`
		} `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	for _, route := range []string{
		"GET /api",
		"GET /api/topics", "POST /api/topics", "GET /api/topics/:slug", "DELETE /api/topics/:slug",
		"GET /api/articles", "POST /api/articles",
		"GET /api/articles/:article_id", "PATCH /api/articles/:article_id", "DELETE /api/articles/:article_id",
		"GET /api/articles/:article_id/comments", "POST /api/articles/:article_id/comments",
		"PATCH /api/comments/:comment_id", "DELETE /api/comments/:comment_id",
		"GET /api/users", "GET /api/users/:username",
	} {
		e, ok := body.Endpoints[route]
		if assert.True(t, ok, "missing %s", route) {
			assert.NotEmpty(t, e.Description, route)
		}
		if strings.HasPrefix(route, "POST") || strings.HasPrefix(route, "PATCH") {
			assert.NotEmpty(t, e.BodyFormat, "%s has a body format", route)
		}
	}
	assert.ElementsMatch(t, []string{"topic", "sort_by", "order", "limit", "p"}, body.Endpoints["GET /api/articles"].Queries)
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	NotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"msg":"Path not found"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	MethodNotAllowed(rr, httptest.NewRequest(http.MethodPut, "/api/articles", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"msg":"Method not allowed"}`, rr.Body.String())
}
