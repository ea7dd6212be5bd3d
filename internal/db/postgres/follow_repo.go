package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"Quill/internal/core/follows"
)

type postgresFollowRepo struct {
	db *sql.DB
}

// NewFollowRepository creates a new PostgreSQL follow graph repository
func NewFollowRepository(db *sql.DB) follows.Repository {
	return &postgresFollowRepo{db: db}
}

// Create inserts a follow edge. ON CONFLICT DO NOTHING makes the
// operation idempotent under concurrent requests; the unique constraint
// on (follower_id, followed_id) guarantees at most one edge per pair.
func (r *postgresFollowRepo) Create(ctx context.Context, followerID, followedID int64) error {
	query := `
		INSERT INTO follows (follower_id, followed_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followed_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, followerID, followedID); err != nil {
		return fmt.Errorf("failed to create follow edge: %w", err)
	}

	return nil
}

// Delete removes a follow edge. A missing edge is not an error.
func (r *postgresFollowRepo) Delete(ctx context.Context, followerID, followedID int64) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`

	if _, err := r.db.ExecContext(ctx, query, followerID, followedID); err != nil {
		return fmt.Errorf("failed to delete follow edge: %w", err)
	}

	return nil
}

// Exists reports whether the edge (follower, followed) is present
func (r *postgresFollowRepo) Exists(ctx context.Context, followerID, followedID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followed_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, followerID, followedID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow edge: %w", err)
	}

	return exists, nil
}

// FollowedIDs returns the ids of every author the follower subscribes to
func (r *postgresFollowRepo) FollowedIDs(ctx context.Context, followerID int64) ([]int64, error) {
	query := `SELECT followed_id FROM follows WHERE follower_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, followerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed authors: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan followed id: %w", err)
		}
		result = append(result, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating followed ids: %w", err)
	}

	return result, nil
}
