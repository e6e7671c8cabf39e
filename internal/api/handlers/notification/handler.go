package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/jinhanworks/board-notifier/internal/api/middleware"
	"github.com/jinhanworks/board-notifier/internal/api/respond"
	"github.com/jinhanworks/board-notifier/internal/repository/announcement"
	"github.com/jinhanworks/board-notifier/internal/service/feed"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mocks.go -package=mocks

type feedService interface {
	Feed(ctx context.Context, userID int64) ([]feed.Item, error)
	MarkRead(ctx context.Context, noticeID string) error
	MarkAnnouncementRead(ctx context.Context, userID, announcementID int64) error
}

// Handler serves the notification read API.
type Handler struct {
	service feedService
}

// NewHandler creates a new notification handler.
func NewHandler(service feedService) *Handler {
	return &Handler{service: service}
}

// List returns the merged notification feed for the authenticated user.
func (h *Handler) List(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthenticated"))
		return
	}

	items, err := h.service.Feed(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to build feed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, items)
}

// MarkRead marks a single stored notice as read. Unknown ids are
// accepted silently.
func (h *Handler) MarkRead(c *ginext.Context) {
	if _, ok := middleware.UserID(c); !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthenticated"))
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		zlog.Logger.Error().Err(err).Str("notice_id", c.Param("id")).Msg("failed to mark notice read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "ok")
}

// MarkAnnouncementRead materializes the shadow notice for an announcement
// and marks it read for the authenticated user.
func (h *Handler) MarkAnnouncementRead(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthenticated"))
		return
	}

	announcementID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.service.MarkAnnouncementRead(c.Request.Context(), userID, announcementID); err != nil {
		if errors.Is(err, announcement.ErrAnnouncementNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("announcement not found"))
			return
		}

		zlog.Logger.Error().Err(err).Int64("announcement_id", announcementID).Msg("failed to mark announcement read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "ok")
}
