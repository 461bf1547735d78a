package models

import (
	"time"
)

// Vote records that a user upvoted a post. A row either exists (voted) or it
// does not; there is no direction column. The composite primary key enforces
// at most one vote per (post, user) pair.
type Vote struct {
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
