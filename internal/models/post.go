package models

import (
	"time"
)

// Post represents a published entry owned by a single user.
type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Published bool   `gorm:"not null;default:true" json:"published"`
	OwnerID   uint   `gorm:"not null;index" json:"owner_id"`
	Owner     User   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner"`
	// Votes is not persisted; computed at query time
	Votes     int       `gorm:"->" json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}
