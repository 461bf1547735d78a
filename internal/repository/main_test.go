package repository

import (
	"testing"

	"soapbox/internal/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	// sqlite ships with FK enforcement off; cascade tests need it on
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}
