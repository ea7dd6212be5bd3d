package users

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Usernames appear in URLs (/profile/{username}, /{username}/{postID}),
// so the charset is restricted to path-safe word characters.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

const minPasswordLength = 8

type userService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a new account with a bcrypt-hashed password
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	req.Username = strings.TrimSpace(strings.ToLower(req.Username))

	if !usernameRegex.MatchString(req.Username) {
		return nil, &InvalidUsernameError{
			Username: req.Username,
			Reason:   "must be 3-30 characters of letters, digits or underscores",
		}
	}
	if len(req.Password) < minPasswordLength {
		return nil, &WeakPasswordError{Reason: "must be at least 8 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     req.Username,
		PasswordHash: string(hash),
	}

	// Repository maps the unique constraint violation to ErrUsernameTaken
	return s.userRepo.Create(ctx, user)
}

// Authenticate verifies a username/password pair
func (s *userService) Authenticate(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(strings.ToLower(username))

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetByUsername retrieves a user by their username
func (s *userService) GetByUsername(ctx context.Context, username string) (*User, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" {
		return nil, ErrUserNotFound
	}
	return s.userRepo.GetByUsername(ctx, username)
}

// GetProfileStats retrieves aggregated profile counts
func (s *userService) GetProfileStats(ctx context.Context, userID int64) (*ProfileStats, error) {
	return s.userRepo.GetProfileStats(ctx, userID)
}
