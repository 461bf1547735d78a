package service

import (
	"context"
	"testing"

	"soapbox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn  func(context.Context, *models.Post) error
	getByIDFn func(context.Context, uint) (*models.Post, error)
	listFn    func(context.Context, string, int, int) ([]*models.Post, error)
	updateFn  func(context.Context, *models.Post) error
	deleteFn  func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, search string, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, search, limit, offset)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listFn:    func(_ context.Context, _ string, _, _ int) ([]*models.Post, error) { return nil, nil },
		updateFn:  func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
	}
}

func boolPtr(b bool) *bool { return &b }

func TestCreatePostDefaultsPublished(t *testing.T) {
	repo := noopPostRepo()
	var created *models.Post
	repo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 10
		created = p
		return nil
	}

	svc := NewPostService(repo)
	post, err := svc.Create(context.Background(), 1, CreatePostInput{
		Title:   "first",
		Content: "body",
	})
	require.NoError(t, err)

	assert.True(t, created.Published)
	assert.Equal(t, uint(1), created.OwnerID)
	assert.Equal(t, uint(10), post.ID)
}

func TestCreatePostHonorsExplicitPublished(t *testing.T) {
	repo := noopPostRepo()
	var created *models.Post
	repo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 10
		created = p
		return nil
	}

	svc := NewPostService(repo)
	_, err := svc.Create(context.Background(), 1, CreatePostInput{
		Title:     "draft",
		Content:   "body",
		Published: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, created.Published)
}

func TestCreatePostRequiresTitleAndContent(t *testing.T) {
	svc := NewPostService(noopPostRepo())

	for _, tc := range []struct{ title, content string }{
		{"", "body"},
		{"title", ""},
	} {
		_, err := svc.Create(context.Background(), 1, CreatePostInput{Title: tc.title, Content: tc.content})
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	}
}

func TestUpdatePostIsFullReplace(t *testing.T) {
	repo := noopPostRepo()
	stored := &models.Post{ID: 5, Title: "old", Content: "old body", Published: false, OwnerID: 1}
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) { return stored, nil }
	repo.updateFn = func(_ context.Context, p *models.Post) error {
		stored = p
		return nil
	}

	svc := NewPostService(repo)

	// Omitting published resets it to true, not to its previous value.
	post, err := svc.Update(context.Background(), 1, 5, UpdatePostInput{
		Title:   "new",
		Content: "new body",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", post.Title)
	assert.Equal(t, "new body", post.Content)
	assert.True(t, post.Published)
}

func TestUpdatePostRejectsNonOwner(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, Title: "t", Content: "c", OwnerID: 1}, nil
	}

	svc := NewPostService(repo)
	_, err := svc.Update(context.Background(), 2, 5, UpdatePostInput{Title: "new", Content: "new body"})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
	assert.Equal(t, "You don't have permission to update this post", appErr.Message)
}

func TestUpdatePostMissingPost(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post not found")
	}

	svc := NewPostService(repo)
	_, err := svc.Update(context.Background(), 1, 99, UpdatePostInput{Title: "t", Content: "c"})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestDeletePostRejectsNonOwner(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, OwnerID: 1}, nil
	}
	deleted := false
	repo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}

	svc := NewPostService(repo)
	err := svc.Delete(context.Background(), 2, 5)
	require.Error(t, err)
	assert.False(t, deleted)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
	assert.Equal(t, "You don't have permission to delete this post", appErr.Message)
}

func TestDeletePostByOwner(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, OwnerID: 1}, nil
	}
	var deletedID uint
	repo.deleteFn = func(_ context.Context, id uint) error {
		deletedID = id
		return nil
	}

	svc := NewPostService(repo)
	require.NoError(t, svc.Delete(context.Background(), 1, 5))
	assert.Equal(t, uint(5), deletedID)
}

func TestListPassesSearchAndPaging(t *testing.T) {
	repo := noopPostRepo()
	var gotSearch string
	var gotLimit, gotOffset int
	repo.listFn = func(_ context.Context, search string, limit, offset int) ([]*models.Post, error) {
		gotSearch, gotLimit, gotOffset = search, limit, offset
		return []*models.Post{{ID: 1}}, nil
	}

	svc := NewPostService(repo)
	posts, err := svc.List(context.Background(), "beach", 10, 20)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "beach", gotSearch)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 20, gotOffset)
}
