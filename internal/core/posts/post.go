package posts

import (
	"time"
)

// Post represents a published post. Author is immutable after creation;
// text, group and image are editable by the author only.
type Post struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	AuthorUsername string    `json:"author" db:"author_username"`
	Text           string    `json:"text" db:"text"`
	GroupSlug      *string   `json:"groupSlug,omitempty" db:"group_slug"`
	GroupTitle     *string   `json:"groupTitle,omitempty" db:"group_title"`
	GroupID        *int64    `json:"groupId,omitempty" db:"group_id"`
	ID             int64     `json:"id" db:"id"`
	AuthorID       int64     `json:"authorId" db:"author_id"`
	HasImage       bool      `json:"hasImage" db:"has_image"`
}

// Comment represents a comment on a post. Comments are immutable after
// creation and are never physically deleted.
type Comment struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	AuthorUsername string    `json:"author" db:"author_username"`
	Text           string    `json:"text" db:"text"`
	ID             int64     `json:"id" db:"id"`
	PostID         int64     `json:"postId" db:"post_id"`
	AuthorID       int64     `json:"authorId" db:"author_id"`
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	Text     string
	Image    []byte // optional; validated before anything is persisted
	GroupID  *int64 // optional
	AuthorID int64
}

// EditPostRequest represents input for editing an existing post.
// The post is addressed the way the URL addresses it: author username
// plus post id. ActorID identifies who is attempting the edit.
type EditPostRequest struct {
	AuthorUsername string
	Text           string
	Image          []byte // optional; nil leaves the stored image unchanged
	GroupID        *int64
	PostID         int64
	ActorID        int64
}

// AddCommentRequest represents input for commenting on a post
type AddCommentRequest struct {
	PostAuthor string // username owning the post URL
	Text       string
	PostID     int64
	AuthorID   int64 // comment author
}
