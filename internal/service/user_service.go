// Package service implements the application's business logic.
package service

import (
	"context"

	"soapbox/internal/models"
	"soapbox/internal/observability"
	"soapbox/internal/repository"
	"soapbox/internal/token"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, login and user lookup.
type UserService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

func NewUserService(userRepo repository.UserRepository, tokens *token.Service) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens}
}

// Register hashes the password and creates the user. A duplicate email is a
// conflict whether it is caught by the pre-check or by the store's unique
// constraint.
func (s *UserService) Register(ctx context.Context, email, password, phoneNumber string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:       email,
		Password:    string(hashed),
		PhoneNumber: phoneNumber,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed access token. Unknown
// email and wrong password yield the identical error so callers cannot tell
// which check failed.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", models.NewValidationError("Username and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.NewForbiddenError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.NewForbiddenError("Invalid credentials")
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	observability.TokensIssued.Inc()
	return signed, nil
}

// Get returns the user by id.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
