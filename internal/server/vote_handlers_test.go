package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"soapbox/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func voteApp(s *Server, userID uint) *fiber.App {
	app := fiber.New()
	app.Post("/votes/", asUser(userID), s.CreateVote)
	return app
}

func voteRequest(t *testing.T, body map[string]any) *http.Request {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/votes/", bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateVote(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		mockSetup      func(*MockPostRepository, *MockVoteRepository)
		expectedStatus int
	}{
		{
			name: "Vote Success",
			body: map[string]any{"post_id": 5, "dir": 1},
			mockSetup: func(posts *MockPostRepository, votes *MockVoteRepository) {
				posts.On("GetByID", mock.Anything, uint(5)).Return(&models.Post{ID: 5}, nil)
				votes.On("Get", mock.Anything, uint(5), uint(1)).Return(nil, nil)
				votes.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Vote Again Conflicts",
			body: map[string]any{"post_id": 5, "dir": 1},
			mockSetup: func(posts *MockPostRepository, votes *MockVoteRepository) {
				posts.On("GetByID", mock.Anything, uint(5)).Return(&models.Post{ID: 5}, nil)
				votes.On("Get", mock.Anything, uint(5), uint(1)).
					Return(&models.Vote{PostID: 5, UserID: 1}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Unvote Success",
			body: map[string]any{"post_id": 5, "dir": 0},
			mockSetup: func(posts *MockPostRepository, votes *MockVoteRepository) {
				posts.On("GetByID", mock.Anything, uint(5)).Return(&models.Post{ID: 5}, nil)
				votes.On("Get", mock.Anything, uint(5), uint(1)).
					Return(&models.Vote{PostID: 5, UserID: 1}, nil)
				votes.On("Delete", mock.Anything, uint(5), uint(1)).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Unvote Without Vote",
			body: map[string]any{"post_id": 5, "dir": 0},
			mockSetup: func(posts *MockPostRepository, votes *MockVoteRepository) {
				posts.On("GetByID", mock.Anything, uint(5)).Return(&models.Post{ID: 5}, nil)
				votes.On("Get", mock.Anything, uint(5), uint(1)).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Missing Post",
			body: map[string]any{"post_id": 99, "dir": 1},
			mockSetup: func(posts *MockPostRepository, votes *MockVoteRepository) {
				posts.On("GetByID", mock.Anything, uint(99)).
					Return(nil, models.NewNotFoundError("Post not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid Direction",
			body:           map[string]any{"post_id": 5, "dir": 2},
			mockSetup:      func(posts *MockPostRepository, votes *MockVoteRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "Missing Post ID",
			body:           map[string]any{"dir": 1},
			mockSetup:      func(posts *MockPostRepository, votes *MockVoteRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPosts := new(MockPostRepository)
			mockVotes := new(MockVoteRepository)
			tt.mockSetup(mockPosts, mockVotes)

			s := newTestServer(new(MockUserRepository), mockPosts, mockVotes)
			app := voteApp(s, 1)

			resp, _ := app.Test(voteRequest(t, tt.body))
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestCreateVoteMessage(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockVotes := new(MockVoteRepository)
	mockPosts.On("GetByID", mock.Anything, uint(5)).Return(&models.Post{ID: 5}, nil)
	mockVotes.On("Get", mock.Anything, uint(5), uint(1)).Return(nil, nil)
	mockVotes.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := newTestServer(new(MockUserRepository), mockPosts, mockVotes)
	app := voteApp(s, 1)

	resp, _ := app.Test(voteRequest(t, map[string]any{"post_id": 5, "dir": 1}))
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "user 1 has successfully voted post 5", body["message"])
}
