package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"

	"Quill/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// postColumns is the shared SELECT list for hydrated posts. Author
// username and group slug/title come from joins so the web layer never
// needs follow-up lookups.
const postColumns = `
	p.id, p.author_id, u.username, p.group_id, g.slug, g.title,
	p.text, p.has_image, p.created_at`

const postFrom = `
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id`

// Feeds order newest-first; id breaks created_at ties deterministically.
const postOrder = ` ORDER BY p.created_at DESC, p.id DESC`

// Create inserts a new post
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (author_id, group_id, text, has_image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	var groupID sql.NullInt64
	if post.GroupID != nil {
		groupID = sql.NullInt64{Int64: *post.GroupID, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		post.AuthorID, groupID, post.Text, post.HasImage,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

// Update persists text, group and has_image. Author and created_at are
// never written.
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET text = $1, group_id = $2, has_image = $3
		WHERE id = $4`

	var groupID sql.NullInt64
	if post.GroupID != nil {
		groupID = sql.NullInt64{Int64: *post.GroupID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query, post.Text, groupID, post.HasImage, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return nil, posts.ErrNotFound
	}

	return post, nil
}

// GetByAuthorAndID retrieves a post addressed by the owning author's
// username and the post id, the way post URLs address it
func (r *postgresPostRepo) GetByAuthorAndID(ctx context.Context, authorUsername string, postID int64) (*posts.Post, error) {
	query := `SELECT` + postColumns + postFrom + ` WHERE u.username = $1 AND p.id = $2`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, authorUsername, postID))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// ListAll retrieves every post, newest-first
func (r *postgresPostRepo) ListAll(ctx context.Context) ([]*posts.Post, error) {
	query := `SELECT` + postColumns + postFrom + postOrder
	return r.listPosts(ctx, query)
}

// ListByGroup retrieves posts tagged to one group, newest-first
func (r *postgresPostRepo) ListByGroup(ctx context.Context, groupSlug string) ([]*posts.Post, error) {
	query := `SELECT` + postColumns + postFrom + ` WHERE g.slug = $1` + postOrder
	return r.listPosts(ctx, query, groupSlug)
}

// ListByAuthor retrieves one author's posts, newest-first
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorUsername string) ([]*posts.Post, error) {
	query := `SELECT` + postColumns + postFrom + ` WHERE u.username = $1` + postOrder
	return r.listPosts(ctx, query, authorUsername)
}

// ListByAuthors retrieves posts by any of the given authors, newest-first.
// Used by the personalized followed feed.
func (r *postgresPostRepo) ListByAuthors(ctx context.Context, authorIDs []int64) ([]*posts.Post, error) {
	if len(authorIDs) == 0 {
		return []*posts.Post{}, nil
	}
	query := `SELECT` + postColumns + postFrom + ` WHERE p.author_id = ANY($1)` + postOrder
	return r.listPosts(ctx, query, pq.Array(authorIDs))
}

func (r *postgresPostRepo) listPosts(ctx context.Context, query string, args ...interface{}) ([]*posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	post := &posts.Post{}
	var groupID sql.NullInt64
	var groupSlug, groupTitle sql.NullString

	err := row.Scan(
		&post.ID, &post.AuthorID, &post.AuthorUsername,
		&groupID, &groupSlug, &groupTitle,
		&post.Text, &post.HasImage, &post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if groupID.Valid {
		post.GroupID = &groupID.Int64
	}
	if groupSlug.Valid {
		post.GroupSlug = &groupSlug.String
	}
	if groupTitle.Valid {
		post.GroupTitle = &groupTitle.String
	}

	return post, nil
}
