package posts

import "context"

// Repository defines the interface for post and comment persistence.
// List methods return materialized sequences ordered newest-first with a
// stable tie-break on id descending; the caller windows them.
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)

	// Update persists text, group and has_image for an existing post.
	// Author and created_at are never touched.
	Update(ctx context.Context, post *Post) (*Post, error)

	// GetByAuthorAndID retrieves a post addressed by the owning author's
	// username and the post id. Returns ErrNotFound when no such post
	// exists under that author.
	GetByAuthorAndID(ctx context.Context, authorUsername string, postID int64) (*Post, error)

	ListAll(ctx context.Context) ([]*Post, error)
	ListByGroup(ctx context.Context, groupSlug string) ([]*Post, error)
	ListByAuthor(ctx context.Context, authorUsername string) ([]*Post, error)
	ListByAuthors(ctx context.Context, authorIDs []int64) ([]*Post, error)

	CreateComment(ctx context.Context, comment *Comment) (*Comment, error)

	// ListComments returns a post's comments oldest-first.
	ListComments(ctx context.Context, postID int64) ([]*Comment, error)
}

// Service defines the business logic interface for the content store
type Service interface {
	// CreatePost validates text and the optional image attachment, then
	// persists the post and its image.
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// EditPost updates a post in place. Returns ErrNotFound when the post
	// does not exist under the named author, ErrNotAuthor when the actor
	// does not own it, and a ValidationError under the same text/image
	// rules as CreatePost.
	EditPost(ctx context.Context, req EditPostRequest) (*Post, error)

	GetPost(ctx context.Context, authorUsername string, postID int64) (*Post, error)

	// AddComment validates and persists a comment on an existing post.
	AddComment(ctx context.Context, req AddCommentRequest) (*Comment, error)

	ListComments(ctx context.Context, postID int64) ([]*Comment, error)
}
