package users

import (
	"time"
)

// User represents an author account. The rest of the core only references
// users; identity and credentials are owned here.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ID           int64     `json:"id" db:"id"`
}

// RegisterRequest represents the input for creating a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileStats contains aggregated counts shown on a profile page
type ProfileStats struct {
	PostCount      int `json:"postCount"`
	FollowerCount  int `json:"followerCount"`
	FollowingCount int `json:"followingCount"`
}
