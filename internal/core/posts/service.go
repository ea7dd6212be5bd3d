package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"Quill/internal/core/attachments"
)

type postService struct {
	repo        Repository
	attachments attachments.Store
	logger      *slog.Logger
}

// NewPostService creates a new post service
func NewPostService(repo Repository, store attachments.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:        repo,
		attachments: store,
		logger:      logger,
	}
}

// CreatePost validates and persists a new post with its optional image
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, NewValidationError("text", "This field is required.")
	}

	// Validate the attachment before anything is persisted so a bad
	// upload never leaves a post behind
	var contentType string
	if len(req.Image) > 0 {
		var err error
		contentType, err = attachments.Validate(req.Image)
		if err != nil {
			return nil, NewValidationError("image", attachments.InvalidImageMessage)
		}
	}

	post := &Post{
		AuthorID: req.AuthorID,
		GroupID:  req.GroupID,
		Text:     req.Text,
		HasImage: len(req.Image) > 0,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if len(req.Image) > 0 {
		if err := s.attachments.Put(ctx, created.ID, contentType, req.Image); err != nil {
			return nil, fmt.Errorf("failed to store attachment: %w", err)
		}
	}

	s.logger.Info("post created",
		"post_id", created.ID,
		"author_id", created.AuthorID,
		"has_image", created.HasImage)

	return created, nil
}

// EditPost updates text, group and image of an existing post in place
func (s *postService) EditPost(ctx context.Context, req EditPostRequest) (*Post, error) {
	post, err := s.repo.GetByAuthorAndID(ctx, req.AuthorUsername, req.PostID)
	if err != nil {
		return nil, err
	}

	// Authorization before validation: a non-author never learns whether
	// their input would have been valid
	if post.AuthorID != req.ActorID {
		return nil, ErrNotAuthor
	}

	if strings.TrimSpace(req.Text) == "" {
		return nil, NewValidationError("text", "This field is required.")
	}

	var contentType string
	if len(req.Image) > 0 {
		contentType, err = attachments.Validate(req.Image)
		if err != nil {
			return nil, NewValidationError("image", attachments.InvalidImageMessage)
		}
	}

	post.Text = req.Text
	post.GroupID = req.GroupID
	if len(req.Image) > 0 {
		post.HasImage = true
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if len(req.Image) > 0 {
		if err := s.attachments.Put(ctx, updated.ID, contentType, req.Image); err != nil {
			return nil, fmt.Errorf("failed to store attachment: %w", err)
		}
	}

	s.logger.Info("post edited", "post_id", updated.ID, "author_id", updated.AuthorID)

	return updated, nil
}

// GetPost retrieves a post addressed by author username and post id
func (s *postService) GetPost(ctx context.Context, authorUsername string, postID int64) (*Post, error) {
	return s.repo.GetByAuthorAndID(ctx, authorUsername, postID)
}

// AddComment validates and persists a comment on an existing post
func (s *postService) AddComment(ctx context.Context, req AddCommentRequest) (*Comment, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, NewValidationError("text", "This field is required.")
	}

	// The post must exist under the URL's author for the comment to land
	post, err := s.repo.GetByAuthorAndID(ctx, req.PostAuthor, req.PostID)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		PostID:   post.ID,
		AuthorID: req.AuthorID,
		Text:     req.Text,
	}

	created, err := s.repo.CreateComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("comment added", "post_id", post.ID, "comment_id", created.ID)

	return created, nil
}

// ListComments returns a post's comments oldest-first
func (s *postService) ListComments(ctx context.Context, postID int64) ([]*Comment, error) {
	return s.repo.ListComments(ctx, postID)
}
