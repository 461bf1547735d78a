// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"soapbox/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
	// all seeded users share this password so local logins are easy
	passwordHash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	return &Factory{
		db:           db,
		rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
		passwordHash: string(hashed),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Email:       gofakeit.Email(),
		Password:    f.passwordHash,
		PhoneNumber: gofakeit.Phone(),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// BuildPost constructs a post for the given owner without persisting it.
// created_at is spread over the past maxDays for a realistic timeline.
func (f *Factory) BuildPost(owner *models.User, maxDays int, overrides ...func(*models.Post)) *models.Post {
	if maxDays <= 0 {
		maxDays = 90
	}
	post := &models.Post{
		Title:     gofakeit.Sentence(5),
		Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
		Published: f.rand.Intn(10) > 0, // most posts published
		OwnerID:   owner.ID,
	}

	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePostsBatch persists multiple posts in a single DB call.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateVote records a vote by user on post. The composite key means a
// repeat pair fails, so callers should pick unique pairs.
func (f *Factory) CreateVote(postID, userID uint) error {
	vote := &models.Vote{PostID: postID, UserID: userID}
	return f.db.Create(vote).Error
}
