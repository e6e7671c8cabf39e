// Package notification holds the consumer-side message handlers.
package notification

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/zlog"

	"github.com/jinhanworks/board-notifier/internal/event"
	"github.com/jinhanworks/board-notifier/internal/repository/article"
	"github.com/jinhanworks/board-notifier/internal/repository/comment"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notification/mocks.go -package=mocks

type fanoutService interface {
	HandleCommentWritten(ctx context.Context, ev event.CommentWritten) error
	HandleArticleWritten(ctx context.Context, ev event.ArticleWritten) error
}

// Handler consumes the ad-articles-notification queue: it decodes each
// envelope and dispatches it to the fan-out service. Failures are
// contained per message so one bad payload never blocks the queue.
type Handler struct {
	service fanoutService
}

// NewHandler creates a new fan-out message handler.
func NewHandler(service fanoutService) *Handler {
	return &Handler{service: service}
}

// HandleMessage processes one raw payload from the queue. Malformed
// envelopes and missing references are logged and dropped; store errors
// are logged and left to broker redelivery.
func (h *Handler) HandleMessage(ctx context.Context, body []byte) {
	ev, err := event.Decode(body)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("payload", string(body)).Msg("dropping undecodable message")
		return
	}

	switch ev := ev.(type) {
	case event.CommentWritten:
		err = h.service.HandleCommentWritten(ctx, ev)
	case event.ArticleWritten:
		err = h.service.HandleArticleWritten(ctx, ev)
	default:
		zlog.Logger.Debug().Str("kind", string(ev.Kind())).Msg("ignoring event kind on articles queue")
		return
	}

	if err != nil {
		if errors.Is(err, comment.ErrCommentNotFound) || errors.Is(err, article.ErrArticleNotFound) {
			zlog.Logger.Warn().Err(err).Msg("dropping event with missing reference")
			return
		}

		zlog.Logger.Error().Err(err).Msg("fan-out failed")
	}
}
