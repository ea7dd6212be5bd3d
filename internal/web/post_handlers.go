package web

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Quill/internal/api/middleware"
	"Quill/internal/core/groups"
	"Quill/internal/core/posts"
)

// maxUploadBytes bounds the multipart form, image included
const maxUploadBytes = 10 << 20

// PostPageData renders the post detail view with its comments
type PostPageData struct {
	Viewer       *middleware.CurrentUser
	Post         *posts.Post
	Comments     []*posts.Comment
	CommentError string
	IsAuthor     bool
}

// PostFormData renders the shared new/edit post form
type PostFormData struct {
	Viewer *middleware.CurrentUser
	Groups []*groups.Group
	Post   *posts.Post // set when editing
	Text   string
	Group  string
	Error  string
	Edit   bool
}

// postForm is the parsed create/edit form submission
type postForm struct {
	text    string
	group   string
	groupID *int64
	image   []byte
}

// parsePostForm reads text, optional group id and optional image upload
// from a post form submission
func parsePostForm(r *http.Request) (*postForm, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		// Plain form posts (no image field) arrive urlencoded
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
	}

	form := &postForm{
		text:  r.FormValue("text"),
		group: r.FormValue("group"),
	}

	if form.group != "" {
		id, err := strconv.ParseInt(form.group, 10, 64)
		if err == nil {
			form.groupID = &id
		}
	}

	file, _, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return nil, err
		}
		form.image = data
	}

	return form, nil
}

// ViewPost handles GET /{username}/{postID}
func (h *Handlers) ViewPost(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		h.notFound(w, r)
		return
	}

	post, err := h.posts.GetPost(r.Context(), username, postID)
	if err != nil {
		if posts.IsNotFound(err) {
			h.notFound(w, r)
			return
		}
		log.Printf("Failed to load post %s/%d: %v", username, postID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	comments, err := h.posts.ListComments(r.Context(), post.ID)
	if err != nil {
		log.Printf("Failed to load comments for post %d: %v", post.ID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	viewer := middleware.GetCurrentUser(r)
	h.render(w, "post.html", PostPageData{
		Viewer:   viewer,
		Post:     post,
		Comments: comments,
		IsAuthor: viewer != nil && viewer.ID == post.AuthorID,
	})
}

// NewPostForm handles GET /new
func (h *Handlers) NewPostForm(w http.ResponseWriter, r *http.Request) {
	h.renderPostForm(w, r, PostFormData{})
}

// CreatePost handles POST /new. Validation errors re-render the form
// inline; success redirects to the home feed.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetCurrentUser(r)

	form, err := parsePostForm(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	_, err = h.posts.CreatePost(r.Context(), posts.CreatePostRequest{
		AuthorID: viewer.ID,
		Text:     form.text,
		GroupID:  form.groupID,
		Image:    form.image,
	})
	if err != nil {
		var valErr *posts.ValidationError
		if errors.As(err, &valErr) {
			h.renderPostForm(w, r, PostFormData{
				Text:  form.text,
				Group: form.group,
				Error: valErr.Message,
			})
			return
		}
		log.Printf("Failed to create post: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// EditPostForm handles GET /{username}/{postID}/edit. A non-author is
// silently redirected to the read view rather than shown an error.
func (h *Handlers) EditPostForm(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		h.notFound(w, r)
		return
	}

	post, err := h.posts.GetPost(r.Context(), username, postID)
	if err != nil {
		if posts.IsNotFound(err) {
			h.notFound(w, r)
			return
		}
		log.Printf("Failed to load post for edit: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	viewer := middleware.GetCurrentUser(r)
	if viewer.ID != post.AuthorID {
		http.Redirect(w, r, postPath(username, postID), http.StatusFound)
		return
	}

	group := ""
	if post.GroupID != nil {
		group = strconv.FormatInt(*post.GroupID, 10)
	}

	h.renderPostForm(w, r, PostFormData{
		Post:  post,
		Text:  post.Text,
		Group: group,
		Edit:  true,
	})
}

// EditPost handles POST /{username}/{postID}/edit
func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		h.notFound(w, r)
		return
	}

	viewer := middleware.GetCurrentUser(r)

	form, err := parsePostForm(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	post, err := h.posts.EditPost(r.Context(), posts.EditPostRequest{
		ActorID:        viewer.ID,
		AuthorUsername: username,
		PostID:         postID,
		Text:           form.text,
		GroupID:        form.groupID,
		Image:          form.image,
	})
	if err != nil {
		switch {
		case posts.IsNotFound(err):
			h.notFound(w, r)
		case posts.IsForbidden(err):
			// Deliberate: non-authors land on the read view, no error page
			http.Redirect(w, r, postPath(username, postID), http.StatusFound)
		case posts.IsValidationError(err):
			var valErr *posts.ValidationError
			errors.As(err, &valErr)
			h.renderPostForm(w, r, PostFormData{
				Text:  form.text,
				Group: form.group,
				Error: valErr.Message,
				Edit:  true,
			})
		default:
			log.Printf("Failed to edit post %s/%d: %v", username, postID, err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, postPath(post.AuthorUsername, post.ID), http.StatusFound)
}

// AddComment handles POST /{username}/{postID}/comment
func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		h.notFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	viewer := middleware.GetCurrentUser(r)

	_, err = h.posts.AddComment(r.Context(), posts.AddCommentRequest{
		PostAuthor: username,
		PostID:     postID,
		AuthorID:   viewer.ID,
		Text:       r.FormValue("text"),
	})
	if err != nil {
		switch {
		case posts.IsNotFound(err):
			h.notFound(w, r)
		case posts.IsValidationError(err):
			// Re-render the post page with the inline form error
			h.renderPostWithCommentError(w, r, username, postID, err)
		default:
			log.Printf("Failed to add comment on %s/%d: %v", username, postID, err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, postPath(username, postID), http.StatusFound)
}

func (h *Handlers) renderPostWithCommentError(w http.ResponseWriter, r *http.Request, username string, postID int64, valErr error) {
	post, err := h.posts.GetPost(r.Context(), username, postID)
	if err != nil {
		h.notFound(w, r)
		return
	}
	comments, err := h.posts.ListComments(r.Context(), post.ID)
	if err != nil {
		log.Printf("Failed to load comments for post %d: %v", post.ID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var ve *posts.ValidationError
	errors.As(valErr, &ve)

	viewer := middleware.GetCurrentUser(r)
	h.render(w, "post.html", PostPageData{
		Viewer:       viewer,
		Post:         post,
		Comments:     comments,
		CommentError: ve.Message,
		IsAuthor:     viewer != nil && viewer.ID == post.AuthorID,
	})
}

func (h *Handlers) renderPostForm(w http.ResponseWriter, r *http.Request, data PostFormData) {
	groupList, err := h.groups.List(r.Context())
	if err != nil {
		log.Printf("Failed to list groups: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	data.Groups = groupList
	data.Viewer = middleware.GetCurrentUser(r)
	h.render(w, "post_form.html", data)
}
