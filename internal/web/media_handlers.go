package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Quill/internal/core/attachments"
)

// ServeImage handles GET /media/posts/{postID} and replays the stored
// image bytes with their recorded content type.
func (h *Handlers) ServeImage(w http.ResponseWriter, r *http.Request) {
	attachment, ok := h.loadAttachment(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", attachment.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := w.Write(attachment.Data); err != nil {
		log.Printf("Failed to write image response: %v", err)
	}
}

// ServeThumbnail handles GET /media/posts/{postID}/thumb with the
// 400px-wide JPEG rendition feed pages embed.
func (h *Handlers) ServeThumbnail(w http.ResponseWriter, r *http.Request) {
	attachment, ok := h.loadAttachment(w, r)
	if !ok {
		return
	}

	thumb, err := attachments.Thumbnail(attachment.Data, attachments.ThumbnailWidth)
	if err != nil {
		// Stored bytes were validated on upload, so this is unexpected
		log.Printf("Failed to build thumbnail for post %d: %v", attachment.PostID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := w.Write(thumb); err != nil {
		log.Printf("Failed to write thumbnail response: %v", err)
	}
}

func (h *Handlers) loadAttachment(w http.ResponseWriter, r *http.Request) (*attachments.Attachment, bool) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		h.notFound(w, r)
		return nil, false
	}

	attachment, err := h.attachments.Get(r.Context(), postID)
	if err != nil {
		if errors.Is(err, attachments.ErrAttachmentNotFound) {
			h.notFound(w, r)
			return nil, false
		}
		log.Printf("Failed to load attachment for post %d: %v", postID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}

	return attachment, true
}
