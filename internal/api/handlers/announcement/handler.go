package announcement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/jinhanworks/board-notifier/internal/api/dto"
	"github.com/jinhanworks/board-notifier/internal/api/middleware"
	"github.com/jinhanworks/board-notifier/internal/api/respond"
	"github.com/jinhanworks/board-notifier/internal/model"
	announcementrepo "github.com/jinhanworks/board-notifier/internal/repository/announcement"
)

type announcementService interface {
	WriteAnnouncement(ctx context.Context, authorID int64, title, content string) (model.Announcement, error)
	GetAnnouncement(ctx context.Context, userID, id int64) (model.Announcement, error)
}

// Handler serves the announcement API.
type Handler struct {
	service   announcementService
	validator *validator.Validate
}

// NewHandler creates a new announcement handler.
func NewHandler(service announcementService, v *validator.Validate) *Handler {
	return &Handler{service: service, validator: v}
}

// Create adds a platform-wide announcement.
func (h *Handler) Create(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthenticated"))
		return
	}

	var req dto.WriteAnnouncementRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	a, err := h.service.WriteAnnouncement(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to write announcement")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, a)
}

// Get returns one announcement and records the view for the
// authenticated user.
func (h *Handler) Get(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthenticated"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	a, err := h.service.GetAnnouncement(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, announcementrepo.ErrAnnouncementNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("announcement not found"))
			return
		}

		zlog.Logger.Error().Err(err).Int64("announcement_id", id).Msg("failed to get announcement")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, a)
}
