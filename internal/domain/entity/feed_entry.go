package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedEntry is a short text post on the shared feed. The author is a
// reference to a User, not an embedded copy; Author is populated on reads
// that join the users collection.
type FeedEntry struct {
	ID        uuid.UUID // Opaque unique identifier for the entry.
	AuthorID  uuid.UUID // Reference to the User that created the entry.
	Author    *User     // Resolved author, populated by list/create reads.
	Content   string    // The posted text.
	Upvotes   int       // Non-negative upvote counter, set by explicit updates only.
	Downvotes int       // Non-negative downvote counter, set by explicit updates only.
	CreatedAt time.Time // Timestamp of when this entry was posted.
	UpdatedAt time.Time // Timestamp of the last counter update.
}
