package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Quill/internal/core/attachments"
)

type postgresAttachmentRepo struct {
	db *sql.DB
}

// NewAttachmentRepository creates a new PostgreSQL attachment store.
// Validated image bytes are stored keyed by post id; a post has at most
// one image.
func NewAttachmentRepository(db *sql.DB) attachments.Store {
	return &postgresAttachmentRepo{db: db}
}

// Put stores or replaces the image for a post
func (r *postgresAttachmentRepo) Put(ctx context.Context, postID int64, contentType string, data []byte) error {
	query := `
		INSERT INTO post_images (post_id, content_type, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (post_id) DO UPDATE
		SET content_type = EXCLUDED.content_type, data = EXCLUDED.data`

	if _, err := r.db.ExecContext(ctx, query, postID, contentType, data); err != nil {
		return fmt.Errorf("failed to store attachment: %w", err)
	}

	return nil
}

// Get retrieves the stored image for a post
func (r *postgresAttachmentRepo) Get(ctx context.Context, postID int64) (*attachments.Attachment, error) {
	attachment := &attachments.Attachment{PostID: postID}
	query := `SELECT content_type, data FROM post_images WHERE post_id = $1`

	err := r.db.QueryRowContext(ctx, query, postID).
		Scan(&attachment.ContentType, &attachment.Data)
	if err == sql.ErrNoRows {
		return nil, attachments.ErrAttachmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return attachment, nil
}
