// Package board serves the article and comment write endpoints, the
// producer side of the notification pipeline.
package board

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
	"github.com/jinhanworks/board-notifier/internal/repository/article"
)

type articleService interface {
	WriteArticle(ctx context.Context, authorID, boardID int64, title, content string) (model.Article, error)
}

type commentService interface {
	WriteComment(ctx context.Context, authorID, articleID int64, content string) (model.Comment, error)
}

// Handler serves the board write API.
type Handler struct {
	articles  articleService
	comments  commentService
	validator *validator.Validate
}

// NewHandler creates a new board handler.
func NewHandler(articles articleService, comments commentService, v *validator.Validate) *Handler {
	return &Handler{articles: articles, comments: comments, validator: v}
}

// WriteArticle creates an article on a board.
func (h *Handler) WriteArticle(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthenticated"))
		return
	}

	boardID, err := strconv.ParseInt(c.Param("boardId"), 10, 64)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid board id"))
		return
	}

	var req dto.WriteArticleRequest
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

	a, err := h.articles.WriteArticle(c.Request.Context(), userID, boardID, req.Title, req.Content)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("board_id", boardID).Msg("failed to write article")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, a)
}

// WriteComment creates a comment under an article.
func (h *Handler) WriteComment(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthenticated"))
		return
	}

	articleID, err := strconv.ParseInt(c.Param("articleId"), 10, 64)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid article id"))
		return
	}

	var req dto.WriteCommentRequest
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

	cm, err := h.comments.WriteComment(c.Request.Context(), userID, articleID, req.Content)
	if err != nil {
		if errors.Is(err, article.ErrArticleNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("article not found"))
			return
		}

		zlog.Logger.Error().Err(err).Int64("article_id", articleID).Msg("failed to write comment")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, cm)
}
