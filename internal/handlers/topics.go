// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsboard/internal/cache"
	"newsboard/internal/models"
	"newsboard/internal/news"
)

// Topics groups the topic handlers. The topic list is served from the
// response cache when one is configured; writes invalidate it.
type Topics struct {
	svc   *news.Service
	cache *cache.ResponseCache
}

// NewTopics creates the topic handler group. rc may be nil.
func NewTopics(svc *news.Service, rc *cache.ResponseCache) *Topics {
	return &Topics{svc: svc, cache: rc}
}

// List handles GET /api/topics.
func (h *Topics) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := h.cache.Get(ctx, cache.TopicsKey); ok {
		writeRawJSON(w, http.StatusOK, cached)
		return
	}

	topics, err := h.svc.ListTopics(ctx)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	body, err := json.Marshal(map[string]any{"topics": topics})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	h.cache.Set(ctx, cache.TopicsKey, body)
	writeRawJSON(w, http.StatusOK, body)
}

// Create handles POST /api/topics.
func (h *Topics) Create(w http.ResponseWriter, r *http.Request) {
	var in models.NewTopic
	if err := decodeBody(w, r, &in); err != nil {
		handleServiceError(w, r, err)
		return
	}
	topic, err := h.svc.InsertTopic(r.Context(), in)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	h.cache.Invalidate(r.Context(), cache.TopicsKey)
	writeJSON(w, http.StatusCreated, map[string]any{"topic": topic})
}

// Delete handles DELETE /api/topics/{slug}.
func (h *Topics) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTopic(r.Context(), chi.URLParam(r, "slug")); err != nil {
		handleServiceError(w, r, err)
		return
	}
	h.cache.Invalidate(r.Context(), cache.TopicsKey)
	w.WriteHeader(http.StatusNoContent)
}

// Articles handles GET /api/topics/{slug}: the articles of one existing
// topic, in the same envelope as GET /api/articles.
func (h *Topics) Articles(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListTopicArticles(r.Context(), chi.URLParam(r, "slug"), listRequest(r.URL.Query()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
