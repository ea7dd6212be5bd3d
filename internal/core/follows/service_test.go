package follows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Quill/internal/core/users"
)

type edge struct {
	follower int64
	followed int64
}

// fakeFollowRepo is an in-memory Repository with the same idempotency
// contract as the postgres implementation.
type fakeFollowRepo struct {
	edges map[edge]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[edge]bool)}
}

func (f *fakeFollowRepo) Create(ctx context.Context, followerID, followedID int64) error {
	f.edges[edge{followerID, followedID}] = true
	return nil
}

func (f *fakeFollowRepo) Delete(ctx context.Context, followerID, followedID int64) error {
	delete(f.edges, edge{followerID, followedID})
	return nil
}

func (f *fakeFollowRepo) Exists(ctx context.Context, followerID, followedID int64) (bool, error) {
	return f.edges[edge{followerID, followedID}], nil
}

func (f *fakeFollowRepo) FollowedIDs(ctx context.Context, followerID int64) ([]int64, error) {
	var ids []int64
	for e := range f.edges {
		if e.follower == followerID {
			ids = append(ids, e.followed)
		}
	}
	return ids, nil
}

type fakeUserRepo struct {
	byUsername map[string]*users.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	f.byUsername[user.Username] = user
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, users.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetProfileStats(ctx context.Context, userID int64) (*users.ProfileStats, error) {
	return &users.ProfileStats{}, nil
}

func setupFollowService(t *testing.T) (Service, *fakeFollowRepo) {
	t.Helper()
	repo := newFakeFollowRepo()
	userRepo := &fakeUserRepo{byUsername: map[string]*users.User{
		"alice": {ID: 1, Username: "alice"},
		"bob":   {ID: 2, Username: "bob"},
	}}
	return NewFollowService(repo, userRepo, nil), repo
}

func TestFollow_CreatesEdge(t *testing.T) {
	svc, _ := setupFollowService(t)
	ctx := context.Background()

	err := svc.Follow(ctx, 1, "bob")
	require.NoError(t, err)

	following, err := svc.IsFollowing(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, following)

	// the edge is directed
	following, err = svc.IsFollowing(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollow_RepeatedFollowLeavesOneEdge(t *testing.T) {
	svc, repo := setupFollowService(t)
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, 1, "bob"))
	require.NoError(t, svc.Follow(ctx, 1, "bob"))

	assert.Len(t, repo.edges, 1)
}

func TestFollow_SelfFollowRejected(t *testing.T) {
	svc, repo := setupFollowService(t)
	ctx := context.Background()

	err := svc.Follow(ctx, 1, "alice")
	assert.ErrorIs(t, err, ErrSelfFollow)
	assert.Empty(t, repo.edges)
}

func TestFollow_UnknownUser(t *testing.T) {
	svc, _ := setupFollowService(t)

	err := svc.Follow(context.Background(), 1, "nobody")
	assert.True(t, users.IsNotFound(err))
}

func TestUnfollow_RemovesEdge(t *testing.T) {
	svc, _ := setupFollowService(t)
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, 1, "bob"))
	require.NoError(t, svc.Unfollow(ctx, 1, "bob"))

	following, err := svc.IsFollowing(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestUnfollow_MissingEdgeIsNoOp(t *testing.T) {
	svc, _ := setupFollowService(t)

	err := svc.Unfollow(context.Background(), 1, "bob")
	assert.NoError(t, err)
}

func TestFollowedIDs(t *testing.T) {
	svc, _ := setupFollowService(t)
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, 1, "bob"))

	ids, err := svc.FollowedIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	ids, err = svc.FollowedIDs(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
