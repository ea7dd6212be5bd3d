package postgres

import (
	"context"
	"fmt"
	"log"

	"Quill/internal/core/posts"
)

// Comment persistence lives on the post repository: comments are owned
// by the content store and share its repository interface.

// CreateComment inserts a new comment on an existing post
func (r *postgresPostRepo) CreateComment(ctx context.Context, comment *posts.Comment) (*posts.Comment, error) {
	query := `
		INSERT INTO comments (post_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		comment.PostID, comment.AuthorID, comment.Text,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment, nil
}

// ListComments retrieves a post's comments oldest-first
func (r *postgresPostRepo) ListComments(ctx context.Context, postID int64) ([]*posts.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, u.username, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []*posts.Comment{}
	for rows.Next() {
		comment := &posts.Comment{}
		err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.AuthorID,
			&comment.AuthorUsername, &comment.Text, &comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}
