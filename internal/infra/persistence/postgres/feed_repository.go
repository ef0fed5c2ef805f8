package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedRepository implements the repository.FeedRepository interface using GORM.
type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository is the constructor for feedRepository.
func NewFeedRepository(db *gorm.DB) repository.FeedRepository {
	return &feedRepository{db: db}
}

// FindByID retrieves a single entry by its unique ID with the author preloaded.
func (repo *feedRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FeedEntry, error) {
	var entryM model.FeedEntryModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&entryM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find feed entry by id")
	}

	return toFeedEntryDomain(&entryM), nil
}

// List returns every entry newest-first with authors preloaded in one
// read-only join. The slice is fully materialized; callers can iterate it
// repeatedly without touching the store again.
func (repo *feedRepository) List(ctx context.Context) ([]*entity.FeedEntry, error) {
	var entryModels []model.FeedEntryModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&entryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feed entries")
	}

	entries := make([]*entity.FeedEntry, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, toFeedEntryDomain(&entryModels[i]))
	}

	return entries, nil
}

// Create persists a new entry. Vote counters start at zero regardless of
// what the caller put on the entity.
func (repo *feedRepository) Create(ctx context.Context, entry *entity.FeedEntry) error {
	entryM := fromFeedEntryDomain(entry)
	entryM.Upvotes = 0
	entryM.Downvotes = 0

	if err := repo.db.WithContext(ctx).Omit("Author").Create(entryM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntryCreationFailed.WrapMessage("author does not reference an existing user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntryCreationFailed.WrapMessage("missing required entry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feed entry")
	}

	entry.ID = entryM.ID
	entry.Upvotes = entryM.Upvotes
	entry.Downvotes = entryM.Downvotes
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// SetVotes overwrites both counters with the caller-supplied absolute
// values. Last committed write wins when callers race on the same entry.
func (repo *feedRepository) SetVotes(ctx context.Context, id uuid.UUID, upvotes, downvotes int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FeedEntryModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"upvotes":   upvotes,
			"downvotes": downvotes,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update feed entry votes")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// toFeedEntryDomain maps the persistence model back to a pure domain entity.
func toFeedEntryDomain(m *model.FeedEntryModel) *entity.FeedEntry {
	entry := &entity.FeedEntry{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		Upvotes:   m.Upvotes,
		Downvotes: m.Downvotes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Author != nil {
		entry.Author = toUserDomain(m.Author)
	}

	return entry
}

// fromFeedEntryDomain maps a pure domain entity to a GORM persistence model.
func fromFeedEntryDomain(e *entity.FeedEntry) *model.FeedEntryModel {
	return &model.FeedEntryModel{
		ID:        e.ID,
		AuthorID:  e.AuthorID,
		Content:   e.Content,
		Upvotes:   e.Upvotes,
		Downvotes: e.Downvotes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
