package feeds

import (
	"context"
	"fmt"

	"Quill/internal/core/posts"
	"Quill/internal/pagination"
)

// Assembler pulls candidate posts for a scope and windows them into
// fixed-size pages.
type Assembler struct {
	posts   PostLister
	follows FollowSource
}

// NewAssembler creates a feed assembler
func NewAssembler(posts PostLister, follows FollowSource) *Assembler {
	return &Assembler{
		posts:   posts,
		follows: follows,
	}
}

// Assemble builds the requested page of the scoped feed. Page numbers
// out of range clamp to the nearest valid page. A FollowedBy scope with
// an empty followed set yields an empty page, not an error.
func (a *Assembler) Assemble(ctx context.Context, scope Scope, pageNumber int) (Page, error) {
	candidates, err := a.listCandidates(ctx, scope)
	if err != nil {
		return Page{}, err
	}
	return pagination.Paginate(candidates, pageNumber), nil
}

func (a *Assembler) listCandidates(ctx context.Context, scope Scope) ([]*posts.Post, error) {
	switch scope.kind {
	case scopeAll:
		return a.posts.ListAll(ctx)
	case scopeGroup:
		return a.posts.ListByGroup(ctx, scope.groupSlug)
	case scopeAuthor:
		return a.posts.ListByAuthor(ctx, scope.authorUsername)
	case scopeFollowedBy:
		followed, err := a.follows.FollowedIDs(ctx, scope.followerID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve followed authors: %w", err)
		}
		if len(followed) == 0 {
			return nil, nil
		}
		return a.posts.ListByAuthors(ctx, followed)
	default:
		return nil, fmt.Errorf("unknown feed scope %d", scope.kind)
	}
}
