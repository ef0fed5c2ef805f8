package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedEntryModel mirrors the 'feed_entries' table. AuthorID references
// users.id; beyond that foreign key the two collections are independent.
type FeedEntryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Author    *UserModel `gorm:"foreignKey:AuthorID"`
	Content   string     `gorm:"type:text;not null"`
	Upvotes   int        `gorm:"not null;default:0"`
	Downvotes int        `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedEntryModel) TableName() string {
	return "feed_entries"
}
