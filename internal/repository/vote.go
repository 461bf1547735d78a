package repository

import (
	"context"
	"errors"

	"soapbox/internal/models"

	"gorm.io/gorm"
)

// VoteRepository defines persistence operations for votes.
type VoteRepository interface {
	Get(ctx context.Context, postID, userID uint) (*models.Vote, error)
	Create(ctx context.Context, vote *models.Vote) error
	Delete(ctx context.Context, postID, userID uint) error
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository returns a new VoteRepository implementation.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Get returns (nil, nil) when the (post, user) pair has no vote row.
func (r *voteRepository) Get(ctx context.Context, postID, userID uint) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &vote, nil
}

func (r *voteRepository) Create(ctx context.Context, vote *models.Vote) error {
	if err := r.db.WithContext(ctx).Create(vote).Error; err != nil {
		// A concurrent vote on the same pair loses the insert race and hits
		// the composite primary key; surface it as the same conflict.
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Vote already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *voteRepository) Delete(ctx context.Context, postID, userID uint) error {
	if err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Vote{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
