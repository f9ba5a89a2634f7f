// Package router sets up all HTTP routes and the middleware chain for the
// newsboard API. Every resource lives under /api; /health sits outside it.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsboard/internal/handlers"
	"newsboard/internal/middleware"
)

// Handlers are the handler groups the routes dispatch to.
type Handlers struct {
	Articles *handlers.Articles
	Comments *handlers.Comments
	Topics   *handlers.Topics
	Users    *handlers.Users
}

// New creates and returns the configured Chi router. limiter may be nil to
// disable rate limiting.
func New(h Handlers, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Unmatched paths and methods answer with the JSON envelope. Set before
	// routes are mounted so subrouters inherit them.
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Get("/", handlers.Endpoints)

		r.Route("/topics", func(r chi.Router) {
			r.Get("/", h.Topics.List)
			r.Post("/", h.Topics.Create)
			r.Get("/{slug}", h.Topics.Articles)
			r.Delete("/{slug}", h.Topics.Delete)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", h.Articles.List)
			r.Post("/", h.Articles.Create)
			r.Get("/{article_id}", h.Articles.Get)
			r.Patch("/{article_id}", h.Articles.UpdateVotes)
			r.Delete("/{article_id}", h.Articles.Delete)
			r.Get("/{article_id}/comments", h.Articles.Comments)
			r.Post("/{article_id}/comments", h.Articles.AddComment)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Patch("/{comment_id}", h.Comments.UpdateVotes)
			r.Delete("/{comment_id}", h.Comments.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.Users.List)
			r.Get("/{username}", h.Users.Get)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
