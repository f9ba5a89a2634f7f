package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsboard/internal/models"
	"newsboard/internal/news"
)

// Comments groups the handlers addressing a comment by id.
type Comments struct {
	svc *news.Service
}

// NewComments creates the comment handler group.
func NewComments(svc *news.Service) *Comments {
	return &Comments{svc: svc}
}

// UpdateVotes handles PATCH /api/comments/{comment_id}.
func (h *Comments) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	var in models.VoteUpdate
	if err := decodeBody(w, r, &in); err != nil {
		handleServiceError(w, r, err)
		return
	}
	comment, err := h.svc.UpdateCommentVotes(r.Context(), chi.URLParam(r, "comment_id"), in)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comment": comment})
}

// Delete handles DELETE /api/comments/{comment_id}.
func (h *Comments) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteComment(r.Context(), chi.URLParam(r, "comment_id")); err != nil {
		handleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
