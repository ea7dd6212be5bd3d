package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Quill/internal/api/middleware"
	"Quill/internal/core/feeds"
	"Quill/internal/core/groups"
	"Quill/internal/core/users"
)

// FeedPageData is shared by every feed page template
type FeedPageData struct {
	Viewer *middleware.CurrentUser
	Page   feeds.Page
}

// GroupPageData renders the group feed with its header
type GroupPageData struct {
	Viewer *middleware.CurrentUser
	Group  *groups.Group
	Page   feeds.Page
}

// ProfilePageData renders an author page with follow state
type ProfilePageData struct {
	Viewer      *middleware.CurrentUser
	Author      *users.User
	Stats       *users.ProfileStats
	Page        feeds.Page
	IsFollowing bool
	IsSelf      bool
}

// Home handles GET / and serves the shared all-posts feed through the
// TTL cache. Stale pages within the TTL window are the contract here;
// viewers needing fresh data use the scoped feeds, which bypass the
// cache.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.homeFeed.Page(r.Context(), pageNumber(r))
	if err != nil {
		log.Printf("Failed to load home feed: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render(w, "index.html", FeedPageData{
		Viewer: middleware.GetCurrentUser(r),
		Page:   page,
	})
}

// GroupFeed handles GET /group/{slug}
func (h *Handlers) GroupFeed(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	group, err := h.groups.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, groups.ErrGroupNotFound) {
			h.notFound(w, r)
			return
		}
		log.Printf("Failed to load group %s: %v", slug, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page, err := h.assembler.Assemble(r.Context(), feeds.ScopeGroup(slug), pageNumber(r))
	if err != nil {
		log.Printf("Failed to assemble group feed %s: %v", slug, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render(w, "group.html", GroupPageData{
		Viewer: middleware.GetCurrentUser(r),
		Group:  group,
		Page:   page,
	})
}

// Profile handles GET /profile/{username}
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	author, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		if users.IsNotFound(err) {
			h.notFound(w, r)
			return
		}
		log.Printf("Failed to load profile %s: %v", username, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	stats, err := h.users.GetProfileStats(r.Context(), author.ID)
	if err != nil {
		log.Printf("Failed to load profile stats for %s: %v", username, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page, err := h.assembler.Assemble(r.Context(), feeds.ScopeAuthor(author.Username), pageNumber(r))
	if err != nil {
		log.Printf("Failed to assemble profile feed %s: %v", username, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := ProfilePageData{
		Viewer: middleware.GetCurrentUser(r),
		Author: author,
		Stats:  stats,
		Page:   page,
	}

	if viewer := data.Viewer; viewer != nil {
		data.IsSelf = viewer.ID == author.ID
		if !data.IsSelf {
			following, err := h.follows.IsFollowing(r.Context(), viewer.ID, author.ID)
			if err != nil {
				log.Printf("Failed to check follow state: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			data.IsFollowing = following
		}
	}

	h.render(w, "profile.html", data)
}

// FollowedFeed handles GET /follow, the personalized feed of posts by
// authors the viewer follows. Never cached: readers here expect their
// own subscription changes to be visible immediately.
func (h *Handlers) FollowedFeed(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetCurrentUser(r)

	page, err := h.assembler.Assemble(r.Context(), feeds.ScopeFollowedBy(viewer.ID), pageNumber(r))
	if err != nil {
		log.Printf("Failed to assemble followed feed for %s: %v", viewer.Username, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render(w, "follow.html", FeedPageData{
		Viewer: viewer,
		Page:   page,
	})
}
