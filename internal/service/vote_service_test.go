package service

import (
	"context"
	"testing"

	"soapbox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// voteRepoStub is a stub for repository.VoteRepository.
type voteRepoStub struct {
	getFn    func(context.Context, uint, uint) (*models.Vote, error)
	createFn func(context.Context, *models.Vote) error
	deleteFn func(context.Context, uint, uint) error
}

func (s *voteRepoStub) Get(ctx context.Context, postID, userID uint) (*models.Vote, error) {
	return s.getFn(ctx, postID, userID)
}
func (s *voteRepoStub) Create(ctx context.Context, vote *models.Vote) error {
	return s.createFn(ctx, vote)
}
func (s *voteRepoStub) Delete(ctx context.Context, postID, userID uint) error {
	return s.deleteFn(ctx, postID, userID)
}

func noopVoteRepo() *voteRepoStub {
	return &voteRepoStub{
		getFn:    func(_ context.Context, _, _ uint) (*models.Vote, error) { return nil, nil },
		createFn: func(_ context.Context, _ *models.Vote) error { return nil },
		deleteFn: func(_ context.Context, _, _ uint) error { return nil },
	}
}

func TestCastRejectsBadDirection(t *testing.T) {
	svc := NewVoteService(noopPostRepo(), noopVoteRepo())

	for _, dir := range []int{-1, 2, 100} {
		_, err := svc.Cast(context.Background(), 1, 5, dir)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	}
}

func TestCastRequiresExistingPost(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post not found")
	}

	svc := NewVoteService(posts, noopVoteRepo())
	_, err := svc.Cast(context.Background(), 1, 99, DirAdd)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCastAddInsertsVote(t *testing.T) {
	votes := noopVoteRepo()
	var created *models.Vote
	votes.createFn = func(_ context.Context, v *models.Vote) error {
		created = v
		return nil
	}

	svc := NewVoteService(noopPostRepo(), votes)
	msg, err := svc.Cast(context.Background(), 1, 5, DirAdd)
	require.NoError(t, err)

	assert.Equal(t, "user 1 has successfully voted post 5", msg)
	require.NotNil(t, created)
	assert.Equal(t, uint(5), created.PostID)
	assert.Equal(t, uint(1), created.UserID)
}

func TestCastAddTwiceConflicts(t *testing.T) {
	votes := noopVoteRepo()
	votes.getFn = func(_ context.Context, postID, userID uint) (*models.Vote, error) {
		return &models.Vote{PostID: postID, UserID: userID}, nil
	}

	svc := NewVoteService(noopPostRepo(), votes)
	_, err := svc.Cast(context.Background(), 1, 5, DirAdd)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.Equal(t, "user 1 has already voted post 5", appErr.Message)
}

func TestCastRemoveDeletesVote(t *testing.T) {
	votes := noopVoteRepo()
	votes.getFn = func(_ context.Context, postID, userID uint) (*models.Vote, error) {
		return &models.Vote{PostID: postID, UserID: userID}, nil
	}
	var deletedPost, deletedUser uint
	votes.deleteFn = func(_ context.Context, postID, userID uint) error {
		deletedPost, deletedUser = postID, userID
		return nil
	}

	svc := NewVoteService(noopPostRepo(), votes)
	msg, err := svc.Cast(context.Background(), 1, 5, DirRemove)
	require.NoError(t, err)

	assert.Equal(t, "user 1 has successfully unvoted post 5", msg)
	assert.Equal(t, uint(5), deletedPost)
	assert.Equal(t, uint(1), deletedUser)
}

func TestCastRemoveWithoutVoteIsNotFound(t *testing.T) {
	svc := NewVoteService(noopPostRepo(), noopVoteRepo())
	_, err := svc.Cast(context.Background(), 1, 5, DirRemove)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Equal(t, "user 1 has not voted post 5", appErr.Message)
}

func TestCastSurfacesInsertRaceAsConflict(t *testing.T) {
	votes := noopVoteRepo()
	votes.createFn = func(_ context.Context, _ *models.Vote) error {
		return models.NewConflictError("Vote already exists")
	}

	svc := NewVoteService(noopPostRepo(), votes)
	_, err := svc.Cast(context.Background(), 1, 5, DirAdd)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}
