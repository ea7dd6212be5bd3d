package attachments

import "context"

// Attachment holds the validated image bytes stored for a post.
type Attachment struct {
	ContentType string
	Data        []byte
	PostID      int64
}

// Store defines persistence for post image attachments, keyed by post id.
type Store interface {
	// Put stores or replaces the image for a post.
	Put(ctx context.Context, postID int64, contentType string, data []byte) error

	// Get retrieves the stored image for a post.
	// Returns ErrAttachmentNotFound when the post has no image.
	Get(ctx context.Context, postID int64) (*Attachment, error)
}
