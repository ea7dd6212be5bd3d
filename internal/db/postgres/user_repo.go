package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Quill/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user record
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, user.Username, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, users.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	user := &users.User{}
	query := `SELECT id, username, password_hash, created_at FROM users WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username
func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	user := &users.User{}
	query := `SELECT id, username, password_hash, created_at FROM users WHERE username = $1`

	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// GetProfileStats aggregates the counts shown on a profile page
func (r *postgresUserRepo) GetProfileStats(ctx context.Context, userID int64) (*users.ProfileStats, error) {
	stats := &users.ProfileStats{}
	query := `
		SELECT
			(SELECT COUNT(*) FROM posts WHERE author_id = $1),
			(SELECT COUNT(*) FROM follows WHERE followed_id = $1),
			(SELECT COUNT(*) FROM follows WHERE follower_id = $1)`

	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&stats.PostCount, &stats.FollowerCount, &stats.FollowingCount)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile stats: %w", err)
	}

	return stats, nil
}
