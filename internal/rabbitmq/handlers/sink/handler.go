// Package sink implements the delivery-channel consumers bound to the
// send_notification fanout exchange.
package sink

import (
	"context"
	"strconv"

	"github.com/wb-go/wbf/zlog"

	"github.com/jinhanworks/board-notifier/internal/event"
)

// Sender delivers a message over one channel (email, sms).
type Sender interface {
	Send(to, msg string) error
}

// Handler consumes one sink queue. Without a configured sender it only
// logs the received payload, which matches the legacy stub consumers.
type Handler struct {
	channel string
	sender  Sender
}

// NewHandler creates a sink handler for the named channel. sender may be
// nil for log-only operation.
func NewHandler(channel string, sender Sender) *Handler {
	return &Handler{channel: channel, sender: sender}
}

// HandleMessage processes one per-recipient notification payload.
func (h *Handler) HandleMessage(_ context.Context, body []byte) {
	ev, err := event.Decode(body)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("channel", h.channel).Msg("dropping undecodable message")
		return
	}

	notify, ok := ev.(event.CommentNotify)
	if !ok {
		zlog.Logger.Debug().
			Str("channel", h.channel).
			Str("kind", string(ev.Kind())).
			Msg("ignoring event kind on sink queue")
		return
	}

	if h.sender == nil {
		zlog.Logger.Info().
			Str("channel", h.channel).
			Int64("comment_id", notify.CommentID).
			Int64("user_id", notify.RecipientID).
			Msg("received notification")
		return
	}

	to := strconv.FormatInt(notify.RecipientID, 10)
	if err := h.sender.Send(to, "A comment was written."); err != nil {
		zlog.Logger.Error().Err(err).
			Str("channel", h.channel).
			Int64("user_id", notify.RecipientID).
			Msg("failed to deliver notification")
	}
}
