package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"pulse/internal/delivery/http/middleware"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubFeedUsecase returns canned outputs for handler tests.
type stubFeedUsecase struct {
	listOutput  *usecase.FeedListOutput
	listErr     error
	entryOutput *usecase.FeedEntryOutput
	entryErr    error

	lastCreate *usecase.CreateEntryInput
	lastVotes  *usecase.UpdateVotesInput
}

func (s *stubFeedUsecase) ListFeed(_ context.Context) (*usecase.FeedListOutput, error) {
	return s.listOutput, s.listErr
}

func (s *stubFeedUsecase) CreateEntry(_ context.Context, input *usecase.CreateEntryInput) (*usecase.FeedEntryOutput, error) {
	s.lastCreate = input

	return s.entryOutput, s.entryErr
}

func (s *stubFeedUsecase) UpdateVotes(_ context.Context, input *usecase.UpdateVotesInput) (*usecase.FeedEntryOutput, error) {
	s.lastVotes = input

	return s.entryOutput, s.entryErr
}

func TestFeedHandler_List(t *testing.T) {
	uc := &stubFeedUsecase{
		listOutput: &usecase.FeedListOutput{Entries: []*usecase.FeedEntryOutput{
			{ID: uuid.New(), Content: "second", CreatedAt: time.Now()},
			{ID: uuid.New(), Content: "first", CreatedAt: time.Now().Add(-time.Minute)},
		}},
	}
	h := NewFeedHandler(uc, newTestLogger())

	c, rec := newHandlerContext(t, http.MethodGet, "/feed", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "second")
	assert.Contains(t, rec.Body.String(), "first")
}

func TestFeedHandler_Create(t *testing.T) {
	authorID := uuid.New()
	uc := &stubFeedUsecase{
		entryOutput: &usecase.FeedEntryOutput{
			ID:      uuid.New(),
			Content: "hello world",
		},
	}
	h := NewFeedHandler(uc, newTestLogger())

	c, rec := newHandlerContext(t, http.MethodPost, "/feed", `{"content":"hello world"}`)
	c.Set(middleware.ContextKeyUserID, authorID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	// The author is the token identity, regardless of the payload.
	require.NotNil(t, uc.lastCreate)
	assert.Equal(t, authorID, uc.lastCreate.AuthorID)
	assert.Equal(t, "hello world", uc.lastCreate.Content)
}

func TestFeedHandler_Create_Unauthenticated(t *testing.T) {
	uc := &stubFeedUsecase{}
	h := NewFeedHandler(uc, newTestLogger())

	c, rec := newHandlerContext(t, http.MethodPost, "/feed", `{"content":"hello world"}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.lastCreate)
}

func TestFeedHandler_Create_EmptyContent(t *testing.T) {
	uc := &stubFeedUsecase{}
	h := NewFeedHandler(uc, newTestLogger())

	c, _ := newHandlerContext(t, http.MethodPost, "/feed", `{"content":""}`)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := h.Create(c)
	assert.Error(t, err)
	assert.Nil(t, uc.lastCreate)
}

func TestFeedHandler_UpdateVotes(t *testing.T) {
	entryID := uuid.New()
	uc := &stubFeedUsecase{
		entryOutput: &usecase.FeedEntryOutput{
			ID:        entryID,
			Content:   "hello world",
			Upvotes:   3,
			Downvotes: 1,
		},
	}
	h := NewFeedHandler(uc, newTestLogger())

	c, rec := newHandlerContext(t, http.MethodPut, "/feed/"+entryID.String()+"/votes",
		`{"upvoteCount":3,"downvoteCount":1}`)
	c.SetParamNames("id")
	c.SetParamValues(entryID.String())
	c.Set(middleware.ContextKeyUserID, uuid.New())

	require.NoError(t, h.UpdateVotes(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.lastVotes)
	assert.Equal(t, entryID, uc.lastVotes.EntryID)
	assert.Equal(t, 3, uc.lastVotes.Upvotes)
	assert.Equal(t, 1, uc.lastVotes.Downvotes)
}

func TestFeedHandler_UpdateVotes_BadID(t *testing.T) {
	uc := &stubFeedUsecase{}
	h := NewFeedHandler(uc, newTestLogger())

	c, rec := newHandlerContext(t, http.MethodPut, "/feed/not-a-uuid/votes",
		`{"upvoteCount":1,"downvoteCount":0}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	c.Set(middleware.ContextKeyUserID, uuid.New())

	require.NoError(t, h.UpdateVotes(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastVotes)
}

func TestFeedHandler_UpdateVotes_NegativeCount(t *testing.T) {
	entryID := uuid.New()
	uc := &stubFeedUsecase{}
	h := NewFeedHandler(uc, newTestLogger())

	c, _ := newHandlerContext(t, http.MethodPut, "/feed/"+entryID.String()+"/votes",
		`{"upvoteCount":-1,"downvoteCount":0}`)
	c.SetParamNames("id")
	c.SetParamValues(entryID.String())
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := h.UpdateVotes(c)
	assert.Error(t, err)
	assert.Nil(t, uc.lastVotes)
}
