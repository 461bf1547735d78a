package service

import (
	"context"

	"soapbox/internal/models"
	"soapbox/internal/repository"
)

// PostService handles post CRUD with ownership enforcement on mutation.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries the fields of a create request. Published defaults
// to true when the request omits it.
type CreatePostInput struct {
	Title     string
	Content   string
	Published *bool
}

// UpdatePostInput carries the fields of an update request; update is a full
// replace of title, content and published.
type UpdatePostInput struct {
	Title     string
	Content   string
	Published *bool
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// List returns posts whose title contains search, each with its vote count.
// All users' posts are visible; there is no ownership filter.
func (s *PostService) List(ctx context.Context, search string, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.List(ctx, search, limit, offset)
}

// Get returns a single post with its vote count.
func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Create inserts a post owned by the caller.
func (s *PostService) Create(ctx context.Context, callerID uint, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" || in.Content == "" {
		return nil, models.NewValidationError("Title and content are required")
	}

	published := true
	if in.Published != nil {
		published = *in.Published
	}

	post := &models.Post{
		Title:     in.Title,
		Content:   in.Content,
		Published: published,
		OwnerID:   callerID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Reload to include the owner record in the response shape.
	return s.postRepo.GetByID(ctx, post.ID)
}

// Update replaces title, content and published on the caller's own post.
func (s *PostService) Update(ctx context.Context, callerID, id uint, in UpdatePostInput) (*models.Post, error) {
	if in.Title == "" || in.Content == "" {
		return nil, models.NewValidationError("Title and content are required")
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.OwnerID != callerID {
		return nil, models.NewForbiddenError("You don't have permission to update this post")
	}

	post.Title = in.Title
	post.Content = in.Content
	post.Published = true
	if in.Published != nil {
		post.Published = *in.Published
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, id)
}

// Delete removes the caller's own post; its votes cascade in the store.
func (s *PostService) Delete(ctx context.Context, callerID, id uint) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.OwnerID != callerID {
		return models.NewForbiddenError("You don't have permission to delete this post")
	}
	return s.postRepo.Delete(ctx, id)
}
