package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/middleware"
	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createEntryRequest is the wire payload for posting a feed entry.
// The author comes from the resolved token, never from the body.
type createEntryRequest struct {
	Content string `json:"content" validate:"required,max=4000"`
}

// updateVotesRequest carries the absolute counter values for a direct-set
// vote update.
type updateVotesRequest struct {
	Upvotes   int `json:"upvoteCount" validate:"gte=0"`
	Downvotes int `json:"downvoteCount" validate:"gte=0"`
}

// FeedHandler holds dependencies for feed-related handlers.
type FeedHandler struct {
	uc     usecase.FeedUsecase
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler, injected by Fx.
func NewFeedHandler(uc usecase.FeedUsecase, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the feed listing request: the whole feed, newest first,
// with each entry's author joined in.
func (h *FeedHandler) List(c echo.Context) error {
	output, err := h.uc.ListFeed(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Entries, "Feed retrieved successfully")
}

// Create handles posting a new feed entry for the authenticated user.
func (h *FeedHandler) Create(c echo.Context) error {
	authorID, ok := resolvedUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "A valid token is required")
	}

	var req createEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feed entry input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateEntry(c.Request().Context(), &usecase.CreateEntryInput{
		AuthorID: authorID,
		Content:  req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Feed entry created successfully")
}

// UpdateVotes handles the direct-set vote update on an entry. Any
// authenticated user may update any entry's counters.
func (h *FeedHandler) UpdateVotes(c echo.Context) error {
	if _, ok := resolvedUserID(c); !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "A valid token is required")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid feed entry id")
	}

	var req updateVotesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vote update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateVotes(c.Request().Context(), &usecase.UpdateVotesInput{
		EntryID:   entryID,
		Upvotes:   req.Upvotes,
		Downvotes: req.Downvotes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Feed entry votes updated successfully")
}

// resolvedUserID reads the identity the auth gate attached to the request.
func resolvedUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return id, ok
}
