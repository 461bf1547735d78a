package server

import (
	"context"

	"soapbox/internal/config"
	"soapbox/internal/models"
	"soapbox/internal/service"
	"soapbox/internal/token"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, search string, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVoteRepository is a mock of the VoteRepository interface
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) Get(ctx context.Context, postID, userID uint) (*models.Vote, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vote), args.Error(1)
}

func (m *MockVoteRepository) Create(ctx context.Context, vote *models.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockVoteRepository) Delete(ctx context.Context, postID, userID uint) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

// newTestServer wires a Server with the given mock repositories and a
// deterministic token service.
func newTestServer(userRepo *MockUserRepository, postRepo *MockPostRepository, voteRepo *MockVoteRepository) *Server {
	tokens := token.NewService("test-secret", 30)
	s := &Server{
		config:   &config.Config{JWTSecret: "test-secret", TokenExpireMinutes: 30},
		userRepo: userRepo,
		postRepo: postRepo,
		voteRepo: voteRepo,
		tokens:   tokens,
	}
	s.userService = service.NewUserService(userRepo, tokens)
	s.postService = service.NewPostService(postRepo)
	s.voteService = service.NewVoteService(postRepo, voteRepo)
	return s
}
