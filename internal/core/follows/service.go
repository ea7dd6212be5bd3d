package follows

import (
	"context"
	"fmt"
	"log/slog"

	"Quill/internal/core/users"
)

type followService struct {
	repo     Repository
	userRepo users.UserRepository
	logger   *slog.Logger
}

// NewFollowService creates a new follow graph service
func NewFollowService(repo Repository, userRepo users.UserRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &followService{
		repo:     repo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Follow adds a subscription edge; repeated calls leave exactly one edge
func (s *followService) Follow(ctx context.Context, followerID int64, followedUsername string) error {
	followed, err := s.userRepo.GetByUsername(ctx, followedUsername)
	if err != nil {
		return err
	}

	if followed.ID == followerID {
		return ErrSelfFollow
	}

	if err := s.repo.Create(ctx, followerID, followed.ID); err != nil {
		return fmt.Errorf("failed to follow: %w", err)
	}

	s.logger.Info("follow edge created", "follower_id", followerID, "followed_id", followed.ID)
	return nil
}

// Unfollow removes the subscription edge; a missing edge is a no-op
func (s *followService) Unfollow(ctx context.Context, followerID int64, followedUsername string) error {
	followed, err := s.userRepo.GetByUsername(ctx, followedUsername)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, followerID, followed.ID); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}

	s.logger.Info("follow edge removed", "follower_id", followerID, "followed_id", followed.ID)
	return nil
}

// IsFollowing reports whether the edge (follower, followed) exists
func (s *followService) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	return s.repo.Exists(ctx, followerID, followedID)
}

// FollowedIDs returns every author id the follower subscribes to
func (s *followService) FollowedIDs(ctx context.Context, followerID int64) ([]int64, error) {
	return s.repo.FollowedIDs(ctx, followerID)
}
