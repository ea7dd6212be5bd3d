package posts

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Quill/internal/core/attachments"
)

// fakePostRepo is an in-memory Repository mirroring the ordering and
// addressing contract of the postgres implementation.
type fakePostRepo struct {
	posts     map[int64]*Post
	comments  []*Comment
	usernames map[int64]string
	nextID    int64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts:     make(map[int64]*Post),
		usernames: map[int64]string{1: "alice", 2: "bob"},
		nextID:    1,
	}
}

func (f *fakePostRepo) Create(ctx context.Context, post *Post) (*Post, error) {
	p := *post
	p.ID = f.nextID
	f.nextID++
	p.CreatedAt = time.Now()
	p.AuthorUsername = f.usernames[p.AuthorID]
	f.posts[p.ID] = &p
	out := p
	return &out, nil
}

func (f *fakePostRepo) Update(ctx context.Context, post *Post) (*Post, error) {
	stored, ok := f.posts[post.ID]
	if !ok {
		return nil, ErrNotFound
	}
	stored.Text = post.Text
	stored.GroupID = post.GroupID
	stored.HasImage = post.HasImage
	out := *stored
	return &out, nil
}

func (f *fakePostRepo) GetByAuthorAndID(ctx context.Context, authorUsername string, postID int64) (*Post, error) {
	p, ok := f.posts[postID]
	if !ok || p.AuthorUsername != authorUsername {
		return nil, ErrNotFound
	}
	out := *p
	return &out, nil
}

func (f *fakePostRepo) ListAll(ctx context.Context) ([]*Post, error) { return nil, nil }

func (f *fakePostRepo) ListByGroup(ctx context.Context, groupSlug string) ([]*Post, error) {
	return nil, nil
}

func (f *fakePostRepo) ListByAuthor(ctx context.Context, authorUsername string) ([]*Post, error) {
	return nil, nil
}

func (f *fakePostRepo) ListByAuthors(ctx context.Context, authorIDs []int64) ([]*Post, error) {
	return nil, nil
}

func (f *fakePostRepo) CreateComment(ctx context.Context, comment *Comment) (*Comment, error) {
	c := *comment
	c.ID = int64(len(f.comments) + 1)
	c.CreatedAt = time.Now()
	f.comments = append(f.comments, &c)
	out := c
	return &out, nil
}

func (f *fakePostRepo) ListComments(ctx context.Context, postID int64) ([]*Comment, error) {
	var out []*Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeAttachmentStore struct {
	stored map[int64][]byte
	types  map[int64]string
}

func newFakeAttachmentStore() *fakeAttachmentStore {
	return &fakeAttachmentStore{stored: make(map[int64][]byte), types: make(map[int64]string)}
}

func (f *fakeAttachmentStore) Put(ctx context.Context, postID int64, contentType string, data []byte) error {
	f.stored[postID] = data
	f.types[postID] = contentType
	return nil
}

func (f *fakeAttachmentStore) Get(ctx context.Context, postID int64) (*attachments.Attachment, error) {
	data, ok := f.stored[postID]
	if !ok {
		return nil, attachments.ErrAttachmentNotFound
	}
	return &attachments.Attachment{PostID: postID, ContentType: f.types[postID], Data: data}, nil
}

func setupPostService(t *testing.T) (Service, *fakePostRepo, *fakeAttachmentStore) {
	t.Helper()
	repo := newFakePostRepo()
	store := newFakeAttachmentStore()
	return NewPostService(repo, store, nil), repo, store
}

func validPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestCreatePost_Success(t *testing.T) {
	svc, repo, _ := setupPostService(t)

	post, err := svc.CreatePost(context.Background(), CreatePostRequest{
		Text:     "first post",
		AuthorID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "first post", post.Text)
	assert.Equal(t, "alice", post.AuthorUsername)
	assert.False(t, post.HasImage)
	assert.Len(t, repo.posts, 1)
}

func TestCreatePost_EmptyTextRejected(t *testing.T) {
	svc, repo, _ := setupPostService(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.CreatePost(context.Background(), CreatePostRequest{
			Text:     text,
			AuthorID: 1,
		})
		assert.True(t, IsValidationError(err), "text %q should fail validation", text)
	}
	assert.Empty(t, repo.posts, "no post should be persisted on validation failure")
}

func TestCreatePost_InvalidImageRejectedBeforePersistence(t *testing.T) {
	svc, repo, store := setupPostService(t)

	_, err := svc.CreatePost(context.Background(), CreatePostRequest{
		Text:     "caption",
		Image:    []byte("not an image at all"),
		AuthorID: 1,
	})

	require.True(t, IsValidationError(err))
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "image", vErr.Field)
	assert.Equal(t, attachments.InvalidImageMessage, vErr.Message)

	assert.Empty(t, repo.posts, "invalid upload must not leave a post behind")
	assert.Empty(t, store.stored)
}

func TestCreatePost_WithImage(t *testing.T) {
	svc, _, store := setupPostService(t)

	post, err := svc.CreatePost(context.Background(), CreatePostRequest{
		Text:     "with picture",
		Image:    validPNG(t),
		AuthorID: 1,
	})
	require.NoError(t, err)
	assert.True(t, post.HasImage)
	assert.Equal(t, "image/png", store.types[post.ID])
}

func TestEditPost_AuthorCanEdit(t *testing.T) {
	svc, _, _ := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, CreatePostRequest{Text: "original", AuthorID: 1})
	require.NoError(t, err)

	updated, err := svc.EditPost(ctx, EditPostRequest{
		AuthorUsername: "alice",
		PostID:         created.ID,
		ActorID:        1,
		Text:           "revised",
	})
	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Text)
	assert.Equal(t, created.ID, updated.ID)
}

func TestEditPost_NonAuthorForbidden(t *testing.T) {
	svc, repo, _ := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, CreatePostRequest{Text: "original", AuthorID: 1})
	require.NoError(t, err)

	_, err = svc.EditPost(ctx, EditPostRequest{
		AuthorUsername: "alice",
		PostID:         created.ID,
		ActorID:        2,
		Text:           "hijacked",
	})
	assert.ErrorIs(t, err, ErrNotAuthor)
	assert.Equal(t, "original", repo.posts[created.ID].Text, "post must be unchanged")
}

func TestEditPost_NonAuthorWithInvalidInputStillForbidden(t *testing.T) {
	// Authorization is checked before validation: a non-author submitting
	// empty text gets ErrNotAuthor, not a validation error.
	svc, _, _ := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, CreatePostRequest{Text: "original", AuthorID: 1})
	require.NoError(t, err)

	_, err = svc.EditPost(ctx, EditPostRequest{
		AuthorUsername: "alice",
		PostID:         created.ID,
		ActorID:        2,
		Text:           "",
	})
	assert.ErrorIs(t, err, ErrNotAuthor)
	assert.False(t, IsValidationError(err))
}

func TestEditPost_EmptyTextRejected(t *testing.T) {
	svc, repo, _ := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, CreatePostRequest{Text: "original", AuthorID: 1})
	require.NoError(t, err)

	_, err = svc.EditPost(ctx, EditPostRequest{
		AuthorUsername: "alice",
		PostID:         created.ID,
		ActorID:        1,
		Text:           "  ",
	})
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "original", repo.posts[created.ID].Text)
}

func TestEditPost_UnknownPost(t *testing.T) {
	svc, _, _ := setupPostService(t)

	_, err := svc.EditPost(context.Background(), EditPostRequest{
		AuthorUsername: "alice",
		PostID:         99,
		ActorID:        1,
		Text:           "anything",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditPost_NilImageKeepsExisting(t *testing.T) {
	svc, _, store := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, CreatePostRequest{
		Text:     "with picture",
		Image:    validPNG(t),
		AuthorID: 1,
	})
	require.NoError(t, err)
	original := store.stored[created.ID]

	updated, err := svc.EditPost(ctx, EditPostRequest{
		AuthorUsername: "alice",
		PostID:         created.ID,
		ActorID:        1,
		Text:           "new caption",
	})
	require.NoError(t, err)
	assert.True(t, updated.HasImage)
	assert.Equal(t, original, store.stored[created.ID], "image must be untouched")
}

func TestAddComment_Success(t *testing.T) {
	svc, _, _ := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, CreatePostRequest{Text: "post", AuthorID: 1})
	require.NoError(t, err)

	comment, err := svc.AddComment(ctx, AddCommentRequest{
		PostAuthor: "alice",
		PostID:     created.ID,
		AuthorID:   2,
		Text:       "nice one",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, comment.PostID)

	comments, err := svc.ListComments(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestAddComment_EmptyTextRejected(t *testing.T) {
	svc, repo, _ := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, CreatePostRequest{Text: "post", AuthorID: 1})
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, AddCommentRequest{
		PostAuthor: "alice",
		PostID:     created.ID,
		AuthorID:   2,
		Text:       "",
	})
	assert.True(t, IsValidationError(err))
	assert.Empty(t, repo.comments)
}

func TestAddComment_UnknownPost(t *testing.T) {
	svc, _, _ := setupPostService(t)

	_, err := svc.AddComment(context.Background(), AddCommentRequest{
		PostAuthor: "alice",
		PostID:     42,
		AuthorID:   2,
		Text:       "into the void",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
