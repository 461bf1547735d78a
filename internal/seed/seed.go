package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"soapbox/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	VoteRatio   float64 // fraction of (post, user) pairs that get a vote
	MaxDays     int     // how far back post timestamps are spread
	ShouldClean bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	factory := NewFactory(db)

	users, err := createUsers(factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	posts, err := createPosts(factory, users, opts.NumPosts, opts.MaxDays)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	votes, err := createVotes(factory, users, posts, opts.VoteRatio)
	if err != nil {
		return fmt.Errorf("failed to create votes: %w", err)
	}
	log.Printf("✓ %d votes created", votes)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE votes, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createPosts(factory *Factory, users []*models.User, count, maxDays int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to own posts")
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		owner := users[r.Intn(len(users))]
		posts = append(posts, factory.BuildPost(owner, maxDays))
	}
	if err := factory.CreatePostsBatch(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// createVotes walks every (post, user) pair once so the composite key is
// never violated, voting on roughly ratio of them.
func createVotes(factory *Factory, users []*models.User, posts []*models.Post, ratio float64) (int, error) {
	if ratio <= 0 {
		ratio = 0.15
	}
	if ratio > 1 {
		ratio = 1
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	count := 0
	for _, post := range posts {
		for _, user := range users {
			if r.Float64() >= ratio {
				continue
			}
			if err := factory.CreateVote(post.ID, user.ID); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
