// Command main runs the database seeder for Soapbox.
package main

import (
	"flag"
	"log"

	"soapbox/internal/config"
	"soapbox/internal/database"
	"soapbox/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	voteRatio := flag.Float64("vote-ratio", 0.15, "Fraction of (post, user) pairs that vote")
	maxDays := flag.Int("max-days", 90, "Spread post timestamps over this many days")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d posts, clean=%v\n", *numUsers, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		VoteRatio:   *voteRatio,
		MaxDays:     *maxDays,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
