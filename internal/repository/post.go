package repository

import (
	"context"
	"errors"

	"soapbox/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, search string, limit, offset int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// applyVoteCount adds a subquery to fetch the vote count in a single query.
func (r *postRepository) applyVoteCount(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM votes WHERE votes.post_id = posts.id) as votes")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.applyVoteCount(r.db.WithContext(ctx)).
		Preload("Owner").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// List returns posts whose title contains search, in natural id order.
// The match is case-sensitive, which is the store's LIKE behavior on
// PostgreSQL.
func (r *postRepository) List(ctx context.Context, search string, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	q := r.applyVoteCount(r.db.WithContext(ctx)).
		Preload("Owner")
	if search != "" {
		q = q.Where("title LIKE ?", "%"+search+"%")
	}
	err := q.Order("posts.id").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	updates := map[string]any{
		"title":     post.Title,
		"content":   post.Content,
		"published": post.Published,
	}
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", post.ID).Updates(updates).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
