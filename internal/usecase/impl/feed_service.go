package impl

import (
	"context"
	"log/slog"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feedService implements the FeedUsecase interface.
type feedService struct {
	txManager repository.TransactionManager
	feedRepo  repository.FeedRepository
	logger    *slog.Logger
}

// FeedServiceParams holds dependencies for feedService, injected by Fx.
type FeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	FeedRepo  repository.FeedRepository
	Logger    *slog.Logger
}

// NewFeedService is the constructor for feedService.
func NewFeedService(params FeedServiceParams) usecase.FeedUsecase {
	return &feedService{
		txManager: params.TxManager,
		feedRepo:  params.FeedRepo,
		logger:    params.Logger,
	}
}

func (srv *feedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFeed returns the whole feed newest-first with authors joined.
// A plain read needs no transaction.
func (srv *feedService) ListFeed(ctx context.Context) (*usecase.FeedListOutput, error) {
	entries, err := srv.feedRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list feed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list feed")
	}

	outputs := make([]*usecase.FeedEntryOutput, 0, len(entries))
	for _, entry := range entries {
		outputs = append(outputs, usecase.NewFeedEntryOutput(entry))
	}

	return &usecase.FeedListOutput{Entries: outputs}, nil
}

// CreateEntry posts a new entry for the authenticated author. The author
// reference is checked and the insert performed in one transaction so a
// concurrently deleted user cannot leave a dangling reference.
func (srv *feedService) CreateEntry(ctx context.Context, input *usecase.CreateEntryInput) (*usecase.FeedEntryOutput, error) {
	srv.log(ctx).Debug("Creating feed entry", slog.Any("authorID", input.AuthorID))

	var created *entity.FeedEntry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		feedRepo := repoFactory.FeedRepo()

		author, err := userRepo.FindByID(ctx, input.AuthorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("entry author does not exist")
			}

			return errors.Wrap(err, "failed to resolve entry author")
		}

		entry := &entity.FeedEntry{
			AuthorID: author.ID,
			Content:  input.Content,
		}
		if err := feedRepo.Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to create feed entry")
		}

		entry.Author = author
		created = entry

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create feed entry", slog.Any("authorID", input.AuthorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute entry creation transaction")
	}

	srv.log(ctx).Debug("Feed entry created", slog.Any("entryID", created.ID))

	return usecase.NewFeedEntryOutput(created), nil
}

// UpdateVotes overwrites an entry's counters with absolute values. This is
// the direct-set semantic: two racing callers overwrite each other and the
// last committed write wins. Any authenticated identity may update any
// entry; there is no ownership check.
func (srv *feedService) UpdateVotes(ctx context.Context, input *usecase.UpdateVotesInput) (*usecase.FeedEntryOutput, error) {
	srv.log(ctx).Debug("Updating feed entry votes", slog.Any("entryID", input.EntryID))

	var updated *entity.FeedEntry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		feedRepo := repoFactory.FeedRepo()

		if err := feedRepo.SetVotes(ctx, input.EntryID, input.Upvotes, input.Downvotes); err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				return domainerrors.ErrEntryNotFound.WrapMessage("cannot update votes on a missing entry")
			}

			return errors.Wrap(err, "failed to set feed entry votes")
		}

		entry, err := feedRepo.FindByID(ctx, input.EntryID)
		if err != nil {
			return errors.Wrap(err, "failed to reload updated entry")
		}
		updated = entry

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update feed entry votes", slog.Any("entryID", input.EntryID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute vote update transaction")
	}

	return usecase.NewFeedEntryOutput(updated), nil
}
