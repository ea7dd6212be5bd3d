package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetProfileStats retrieves aggregated post/follower/following counts
	// for a user's profile page.
	GetProfileStats(ctx context.Context, userID int64) (*ProfileStats, error)
}

// UserService defines the interface for user business logic
type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Authenticate verifies a username/password pair and returns the user.
	// Returns ErrInvalidCredentials when either part is wrong.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	GetByUsername(ctx context.Context, username string) (*User, error)
	GetProfileStats(ctx context.Context, userID int64) (*ProfileStats, error)
}
