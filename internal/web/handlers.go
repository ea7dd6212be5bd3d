package web

import (
	"log"
	"log/slog"
	"net/http"
	"strconv"

	"Quill/internal/api/middleware"
	"Quill/internal/core/attachments"
	"Quill/internal/core/feeds"
	"Quill/internal/core/follows"
	"Quill/internal/core/groups"
	"Quill/internal/core/posts"
	"Quill/internal/core/users"
)

// Handlers provides the HTTP handlers for the Quill web interface.
type Handlers struct {
	templates   *Templates
	auth        *middleware.SessionAuth
	users       users.UserService
	groups      groups.Service
	posts       posts.Service
	follows     follows.Service
	assembler   *feeds.Assembler
	homeFeed    *feeds.HomeFeedCache
	attachments attachments.Store
	logger      *slog.Logger
}

// NewHandlers creates a new Handlers instance with the provided dependencies.
func NewHandlers(
	templates *Templates,
	auth *middleware.SessionAuth,
	userService users.UserService,
	groupService groups.Service,
	postService posts.Service,
	followService follows.Service,
	assembler *feeds.Assembler,
	homeFeed *feeds.HomeFeedCache,
	attachmentStore attachments.Store,
	logger *slog.Logger,
) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		templates:   templates,
		auth:        auth,
		users:       userService,
		groups:      groupService,
		posts:       postService,
		follows:     followService,
		assembler:   assembler,
		homeFeed:    homeFeed,
		attachments: attachmentStore,
		logger:      logger,
	}
}

// pageNumber parses the ?page= query parameter. Anything unparseable is
// page 1; out-of-range values are clamped later by the paginator.
func pageNumber(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// render writes the template or a 500 when rendering fails
func (h *Handlers) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.templates.Render(w, name, data); err != nil {
		log.Printf("Failed to render %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// notFound renders the 404 page
func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	h.render(w, "404.html", map[string]string{"Path": r.URL.Path})
}

// postPath builds the canonical read view URL for a post
func postPath(username string, postID int64) string {
	return "/" + username + "/" + strconv.FormatInt(postID, 10)
}
