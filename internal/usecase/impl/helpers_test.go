package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"

	"github.com/google/uuid"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTxManager runs the callback against a fixed factory without any
// real transaction, so callback errors propagate exactly as in production.
type passthroughTxManager struct {
	factory repository.RepositoryFactory
}

func (m *passthroughTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type staticRepoFactory struct {
	userRepo repository.UserRepository
	feedRepo repository.FeedRepository
}

func (f *staticRepoFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *staticRepoFactory) FeedRepo() repository.FeedRepository {
	return f.feedRepo
}

// fakeUserRepo is an in-memory credential store for flow tests.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cloned := *user

	return &cloned, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			cloned := *user

			return &cloned, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username is already registered")
		}
	}

	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	cloned := *user
	r.users[user.ID] = &cloned

	return nil
}

// fakeFeedRepo is an in-memory entry store for flow tests. Creation times
// are strictly increasing so newest-first ordering is deterministic.
type fakeFeedRepo struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entity.FeedEntry
	users   *fakeUserRepo
	clock   time.Time
}

func newFakeFeedRepo(users *fakeUserRepo) *fakeFeedRepo {
	return &fakeFeedRepo{
		entries: make(map[uuid.UUID]*entity.FeedEntry),
		users:   users,
		clock:   time.Now(),
	}
}

func (r *fakeFeedRepo) resolveAuthor(entry *entity.FeedEntry) *entity.FeedEntry {
	cloned := *entry
	if author, ok := r.users.users[entry.AuthorID]; ok {
		authorCopy := *author
		cloned.Author = &authorCopy
	}

	return &cloned
}

func (r *fakeFeedRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FeedEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, repository.ErrEntryNotFound
	}

	return r.resolveAuthor(entry), nil
}

func (r *fakeFeedRepo) List(_ context.Context) ([]*entity.FeedEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]*entity.FeedEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, r.resolveAuthor(entry))
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}

func (r *fakeFeedRepo) Create(_ context.Context, entry *entity.FeedEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users.users[entry.AuthorID]; !ok {
		return domainerrors.ErrEntryCreationFailed.WrapMessage("author does not reference an existing user")
	}

	entry.ID = uuid.New()
	r.clock = r.clock.Add(time.Millisecond)
	entry.CreatedAt = r.clock
	entry.UpdatedAt = r.clock
	entry.Upvotes = 0
	entry.Downvotes = 0
	cloned := *entry
	r.entries[entry.ID] = &cloned

	return nil
}

func (r *fakeFeedRepo) SetVotes(_ context.Context, id uuid.UUID, upvotes, downvotes int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return repository.ErrEntryNotFound
	}

	entry.Upvotes = upvotes
	entry.Downvotes = downvotes
	entry.UpdatedAt = time.Now()

	return nil
}
