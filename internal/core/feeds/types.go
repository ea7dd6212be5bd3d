// Package feeds composes paginated, newest-first post sequences for the
// four feed scopes and owns the TTL cache in front of the shared home
// feed.
package feeds

import (
	"context"

	"Quill/internal/core/posts"
	"Quill/internal/pagination"
)

// scopeKind discriminates the feed scopes
type scopeKind int

const (
	scopeAll scopeKind = iota
	scopeGroup
	scopeAuthor
	scopeFollowedBy
)

// Scope selects which posts a feed contains. Construct with ScopeAll,
// ScopeGroup, ScopeAuthor or ScopeFollowedBy.
type Scope struct {
	groupSlug      string
	authorUsername string
	followerID     int64
	kind           scopeKind
}

// ScopeAll selects every post (the shared home feed).
func ScopeAll() Scope { return Scope{kind: scopeAll} }

// ScopeGroup selects posts tagged to one group.
func ScopeGroup(slug string) Scope { return Scope{kind: scopeGroup, groupSlug: slug} }

// ScopeAuthor selects posts by one author.
func ScopeAuthor(username string) Scope { return Scope{kind: scopeAuthor, authorUsername: username} }

// ScopeFollowedBy selects posts by every author the user follows.
func ScopeFollowedBy(userID int64) Scope { return Scope{kind: scopeFollowedBy, followerID: userID} }

// Page is one feed window.
type Page = pagination.Page[*posts.Post]

// PostLister is the slice of the content store the assembler consumes.
// All methods return materialized sequences ordered newest-first with a
// stable id-descending tie-break.
type PostLister interface {
	ListAll(ctx context.Context) ([]*posts.Post, error)
	ListByGroup(ctx context.Context, groupSlug string) ([]*posts.Post, error)
	ListByAuthor(ctx context.Context, authorUsername string) ([]*posts.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []int64) ([]*posts.Post, error)
}

// FollowSource is the slice of the follow graph the assembler consumes.
type FollowSource interface {
	FollowedIDs(ctx context.Context, followerID int64) ([]int64, error)
}
