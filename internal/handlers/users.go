package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsboard/internal/cache"
	"newsboard/internal/news"
)

// Users groups the read-only user handlers.
type Users struct {
	svc   *news.Service
	cache *cache.ResponseCache
}

// NewUsers creates the user handler group. rc may be nil.
func NewUsers(svc *news.Service, rc *cache.ResponseCache) *Users {
	return &Users{svc: svc, cache: rc}
}

// List handles GET /api/users.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := h.cache.Get(ctx, cache.UsersKey); ok {
		writeRawJSON(w, http.StatusOK, cached)
		return
	}

	users, err := h.svc.ListUsers(ctx)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	body, err := json.Marshal(map[string]any{"users": users})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	h.cache.Set(ctx, cache.UsersKey, body)
	writeRawJSON(w, http.StatusOK, body)
}

// Get handles GET /api/users/{username}.
func (h *Users) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetUser(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
