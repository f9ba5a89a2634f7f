// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"newsboard/internal/models"
	"newsboard/internal/news"
	"newsboard/internal/query"
)

// Articles groups the article and article-comment handlers.
type Articles struct {
	svc *news.Service
}

// NewArticles creates the article handler group.
func NewArticles(svc *news.Service) *Articles {
	return &Articles{svc: svc}
}

// listRequest reads the article listing parameters from the query string.
func listRequest(v url.Values) news.ArticleListRequest {
	return news.ArticleListRequest{
		Topic:  query.FromValues(v, "topic"),
		SortBy: query.FromValues(v, "sort_by"),
		Order:  query.FromValues(v, "order"),
		Limit:  query.FromValues(v, "limit"),
		Page:   query.FromValues(v, "p"),
	}
}

// List handles GET /api/articles.
func (h *Articles) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListArticles(r.Context(), listRequest(r.URL.Query()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Get handles GET /api/articles/{article_id}.
func (h *Articles) Get(w http.ResponseWriter, r *http.Request) {
	article, err := h.svc.GetArticle(r.Context(), chi.URLParam(r, "article_id"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"article": article})
}

// UpdateVotes handles PATCH /api/articles/{article_id}.
func (h *Articles) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	var in models.VoteUpdate
	if err := decodeBody(w, r, &in); err != nil {
		handleServiceError(w, r, err)
		return
	}
	article, err := h.svc.UpdateArticleVotes(r.Context(), chi.URLParam(r, "article_id"), in)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"article": article})
}

// Create handles POST /api/articles.
func (h *Articles) Create(w http.ResponseWriter, r *http.Request) {
	var in models.NewArticle
	if err := decodeBody(w, r, &in); err != nil {
		handleServiceError(w, r, err)
		return
	}
	article, err := h.svc.InsertArticle(r.Context(), in)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"article": article})
}

// Delete handles DELETE /api/articles/{article_id}.
func (h *Articles) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteArticle(r.Context(), chi.URLParam(r, "article_id")); err != nil {
		handleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Comments handles GET /api/articles/{article_id}/comments.
func (h *Articles) Comments(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	comments, err := h.svc.ListComments(r.Context(), chi.URLParam(r, "article_id"),
		query.FromValues(v, "limit"), query.FromValues(v, "p"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

// AddComment handles POST /api/articles/{article_id}/comments.
//
// The id is validated before the body is decoded so a malformed id is
// reported the same way whatever the body contains.
func (h *Articles) AddComment(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "article_id")
	if _, err := query.ParseID(rawID); err != nil {
		handleServiceError(w, r, err)
		return
	}
	var in models.NewComment
	if err := decodeBody(w, r, &in); err != nil {
		handleServiceError(w, r, err)
		return
	}
	comment, err := h.svc.InsertComment(r.Context(), rawID, in)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"comment": comment})
}
