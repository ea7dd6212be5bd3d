package follows

import "context"

// Repository defines persistence for follow edges. Create and Delete are
// idempotent: Create relies on the unique (follower_id, followed_id)
// constraint and treats an existing edge as success, Delete treats a
// missing edge as success.
type Repository interface {
	Create(ctx context.Context, followerID, followedID int64) error
	Delete(ctx context.Context, followerID, followedID int64) error
	Exists(ctx context.Context, followerID, followedID int64) (bool, error)

	// FollowedIDs returns the ids of every author the follower subscribes to.
	FollowedIDs(ctx context.Context, followerID int64) ([]int64, error)
}

// Service defines the follow graph operations exposed to the web layer
// and the feed assembler.
type Service interface {
	// Follow adds an edge from follower to the named user. Following
	// yourself fails with ErrSelfFollow; following someone you already
	// follow is a no-op.
	Follow(ctx context.Context, followerID int64, followedUsername string) error

	// Unfollow removes the edge if present; absence is not an error.
	Unfollow(ctx context.Context, followerID int64, followedUsername string) error

	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)

	// FollowedIDs returns the ids of authors whose posts belong in the
	// follower's personalized feed.
	FollowedIDs(ctx context.Context, followerID int64) ([]int64, error)
}
