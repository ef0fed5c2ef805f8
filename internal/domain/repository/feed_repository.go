package repository

import (
	"context"
	"errors"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEntryNotFound is a domain-specific error returned when a feed entry is not found.
var ErrEntryNotFound = errors.New("feed entry not found")

// FeedRepository defines the standard operations for feed entry persistence.
type FeedRepository interface {
	// FindByID retrieves a single entry by its unique ID, with the author resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FeedEntry, error)

	// List returns all entries newest-first by creation time, each with its
	// author resolved. The result is fully materialized; there is no paging.
	List(ctx context.Context) ([]*entity.FeedEntry, error)

	// Create persists a new entry. The author reference must resolve to an
	// existing user; a dangling reference is rejected by the store.
	Create(ctx context.Context, entry *entity.FeedEntry) error

	// SetVotes overwrites the entry's vote counters with absolute values.
	// This is a direct-set, not an increment: concurrent callers race and
	// the last committed write wins.
	SetVotes(ctx context.Context, id uuid.UUID, upvotes, downvotes int) error
}
