// Package follows owns the directed subscription graph between authors.
// An edge (follower, followed) scopes the personalized feed; uniqueness
// is enforced by the storage layer so concurrent requests cannot create
// duplicates.
package follows

import (
	"time"
)

// Follow is a directed subscription edge
type Follow struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	ID         int64     `json:"id" db:"id"`
	FollowerID int64     `json:"followerId" db:"follower_id"`
	FollowedID int64     `json:"followedId" db:"followed_id"`
}
