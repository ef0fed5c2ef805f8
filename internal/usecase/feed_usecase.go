package usecase

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateEntryInput defines the data required to post a feed entry.
// AuthorID comes from the resolved token identity, never from the payload.
type CreateEntryInput struct {
	AuthorID uuid.UUID
	Content  string
}

// UpdateVotesInput defines a direct-set vote mutation: both counters are
// overwritten with the supplied absolute values.
type UpdateVotesInput struct {
	EntryID   uuid.UUID
	Upvotes   int
	Downvotes int
}

// --- Output DTOs ---

// FeedEntryOutput is the outward-facing projection of a feed entry.
type FeedEntryOutput struct {
	ID        uuid.UUID   `json:"id"`
	Author    *UserOutput `json:"author"`
	Content   string      `json:"content"`
	Upvotes   int         `json:"upvoteCount"`
	Downvotes int         `json:"downvoteCount"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// FeedListOutput returns the fully materialized feed, newest first.
type FeedListOutput struct {
	Entries []*FeedEntryOutput `json:"entries"`
}

// NewFeedEntryOutput maps a domain entry to its outward-facing projection.
func NewFeedEntryOutput(entry *entity.FeedEntry) *FeedEntryOutput {
	if entry == nil {
		return nil
	}

	return &FeedEntryOutput{
		ID:        entry.ID,
		Author:    NewUserOutput(entry.Author),
		Content:   entry.Content,
		Upvotes:   entry.Upvotes,
		Downvotes: entry.Downvotes,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// FeedUsecase defines the interface for feed-related business operations.
type FeedUsecase interface {
	ListFeed(ctx context.Context) (*FeedListOutput, error)
	CreateEntry(ctx context.Context, input *CreateEntryInput) (*FeedEntryOutput, error)
	UpdateVotes(ctx context.Context, input *UpdateVotesInput) (*FeedEntryOutput, error)
}
