package impl

import (
	"context"
	"testing"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	mockrepo "pulse/internal/mocks/repository"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newFeedServiceForTest(userRepo repository.UserRepository, feedRepo repository.FeedRepository) usecase.FeedUsecase {
	return NewFeedService(FeedServiceParams{
		TxManager: &passthroughTxManager{factory: &staticRepoFactory{userRepo: userRepo, feedRepo: feedRepo}},
		FeedRepo:  feedRepo,
		Logger:    newTestLogger(),
	})
}

func TestFeedService_CreateEntry(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()
	author := &entity.User{ID: authorID, Username: "tim", FirstName: "Tim"}

	userRepo := mockrepo.NewMockUserRepository(t)
	feedRepo := mockrepo.NewMockFeedRepository(t)

	userRepo.On("FindByID", ctx, authorID).Return(author, nil)
	feedRepo.On("Create", ctx, mock.AnythingOfType("*entity.FeedEntry")).
		Run(func(args mock.Arguments) {
			entry := args.Get(1).(*entity.FeedEntry)
			entry.ID = uuid.New()
			entry.CreatedAt = time.Now()
			entry.UpdatedAt = entry.CreatedAt
		}).
		Return(nil)

	srv := newFeedServiceForTest(userRepo, feedRepo)

	output, err := srv.CreateEntry(ctx, &usecase.CreateEntryInput{AuthorID: authorID, Content: "hello world"})
	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, "hello world", output.Content)

	// Fresh entries start with zeroed counters and carry the resolved author.
	assert.Equal(t, 0, output.Upvotes)
	assert.Equal(t, 0, output.Downvotes)
	assert.NotNil(t, output.Author)
	assert.Equal(t, "tim", output.Author.Username)
}

func TestFeedService_CreateEntry_MissingAuthor(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	userRepo := mockrepo.NewMockUserRepository(t)
	feedRepo := mockrepo.NewMockFeedRepository(t)

	userRepo.On("FindByID", ctx, authorID).Return(nil, repository.ErrUserNotFound)

	srv := newFeedServiceForTest(userRepo, feedRepo)

	output, err := srv.CreateEntry(ctx, &usecase.CreateEntryInput{AuthorID: authorID, Content: "orphan"})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	feedRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFeedService_UpdateVotes(t *testing.T) {
	ctx := context.Background()
	entryID := uuid.New()

	userRepo := mockrepo.NewMockUserRepository(t)
	feedRepo := mockrepo.NewMockFeedRepository(t)

	feedRepo.On("SetVotes", ctx, entryID, 7, 2).Return(nil)
	feedRepo.On("FindByID", ctx, entryID).Return(&entity.FeedEntry{
		ID:        entryID,
		Content:   "hello world",
		Upvotes:   7,
		Downvotes: 2,
	}, nil)

	srv := newFeedServiceForTest(userRepo, feedRepo)

	output, err := srv.UpdateVotes(ctx, &usecase.UpdateVotesInput{EntryID: entryID, Upvotes: 7, Downvotes: 2})
	assert.NoError(t, err)
	assert.NotNil(t, output)

	// Counters are overwritten with the supplied absolute values.
	assert.Equal(t, 7, output.Upvotes)
	assert.Equal(t, 2, output.Downvotes)
}

func TestFeedService_UpdateVotes_MissingEntry(t *testing.T) {
	ctx := context.Background()
	entryID := uuid.New()

	userRepo := mockrepo.NewMockUserRepository(t)
	feedRepo := mockrepo.NewMockFeedRepository(t)

	feedRepo.On("SetVotes", ctx, entryID, 1, 0).Return(repository.ErrEntryNotFound)

	srv := newFeedServiceForTest(userRepo, feedRepo)

	output, err := srv.UpdateVotes(ctx, &usecase.UpdateVotesInput{EntryID: entryID, Upvotes: 1, Downvotes: 0})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
	feedRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestFeedService_ListFeed(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	newer := &entity.FeedEntry{ID: uuid.New(), Content: "second", CreatedAt: now}
	older := &entity.FeedEntry{ID: uuid.New(), Content: "first", CreatedAt: now.Add(-time.Minute)}

	userRepo := mockrepo.NewMockUserRepository(t)
	feedRepo := mockrepo.NewMockFeedRepository(t)

	feedRepo.On("List", ctx).Return([]*entity.FeedEntry{newer, older}, nil)

	srv := newFeedServiceForTest(userRepo, feedRepo)

	output, err := srv.ListFeed(ctx)
	assert.NoError(t, err)
	assert.Len(t, output.Entries, 2)
	assert.Equal(t, "second", output.Entries[0].Content)
	assert.Equal(t, "first", output.Entries[1].Content)
}

func TestFeedService_ListFeed_Empty(t *testing.T) {
	ctx := context.Background()

	userRepo := mockrepo.NewMockUserRepository(t)
	feedRepo := mockrepo.NewMockFeedRepository(t)

	feedRepo.On("List", ctx).Return([]*entity.FeedEntry{}, nil)

	srv := newFeedServiceForTest(userRepo, feedRepo)

	output, err := srv.ListFeed(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, output.Entries)
	assert.Empty(t, output.Entries)
}
