// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. The password column stores a bcrypt
// hash and is never serialized.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	Posts []Post `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}
