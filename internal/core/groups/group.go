// Package groups owns the topical groups posts can be tagged with.
// Groups are created operationally (seed data / admin), never through
// the web surface, so the service here is read-only.
package groups

import (
	"context"
	"errors"
)

// Group is a topical container for posts. The slug is the immutable
// URL key; title and description are presentation fields.
type Group struct {
	Slug        string `json:"slug" db:"slug"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	ID          int64  `json:"id" db:"id"`
}

// ErrGroupNotFound is returned when a group lookup finds no matching record
var ErrGroupNotFound = errors.New("group not found")

// Repository defines the interface for group data persistence
type Repository interface {
	Create(ctx context.Context, group *Group) (*Group, error)
	GetBySlug(ctx context.Context, slug string) (*Group, error)
	List(ctx context.Context) ([]*Group, error)
}

// Service defines the read surface the web layer consumes
type Service interface {
	GetBySlug(ctx context.Context, slug string) (*Group, error)
	List(ctx context.Context) ([]*Group, error)
}

type groupService struct {
	repo Repository
}

// NewGroupService creates a new group service
func NewGroupService(repo Repository) Service {
	return &groupService{repo: repo}
}

func (s *groupService) GetBySlug(ctx context.Context, slug string) (*Group, error) {
	if slug == "" {
		return nil, ErrGroupNotFound
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *groupService) List(ctx context.Context) ([]*Group, error) {
	return s.repo.List(ctx)
}
