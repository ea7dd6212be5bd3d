package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Quill/internal/api/middleware"
	"Quill/internal/core/follows"
	"Quill/internal/core/users"
)

// Follow handles GET /{username}/follow. Creating the edge is
// idempotent: following someone you already follow leaves one edge and
// still redirects to their profile.
func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	viewer := middleware.GetCurrentUser(r)

	err := h.follows.Follow(r.Context(), viewer.ID, username)
	if err != nil {
		switch {
		case users.IsNotFound(err):
			h.notFound(w, r)
			return
		case errors.Is(err, follows.ErrSelfFollow):
			// Following yourself is a no-op at the web surface; the
			// profile page never offers the link
		default:
			log.Printf("Failed to follow %s: %v", username, err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/profile/"+username, http.StatusFound)
}

// Unfollow handles GET /{username}/unfollow. Removing a missing edge is
// a no-op.
func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	viewer := middleware.GetCurrentUser(r)

	if err := h.follows.Unfollow(r.Context(), viewer.ID, username); err != nil {
		if users.IsNotFound(err) {
			h.notFound(w, r)
			return
		}
		log.Printf("Failed to unfollow %s: %v", username, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile/"+username, http.StatusFound)
}
