// Package event defines the domain events carried on the notification
// queues and their wire codec.
//
// Events are encoded as a discriminated union {"kind": ..., "payload": ...}.
// The decoder additionally accepts the legacy text envelope
// "Kind(key=value, ...)" still emitted by older producers.
package event

// Kind identifies an event type on the wire. The names match the
// simple class names used by the legacy producers, which the article
// queue consumer dispatches on.
type Kind string

const (
	// KindWriteArticle is published after an article row is committed.
	KindWriteArticle Kind = "WriteArticle"
	// KindWriteComment is published after a comment row is committed.
	KindWriteComment Kind = "WriteComment"
	// KindSendCommentNotification is the per-recipient fan-out event
	// broadcast to the delivery sink queues.
	KindSendCommentNotification Kind = "SendCommentNotification"
)

// Event is implemented by every domain event.
type Event interface {
	Kind() Kind
}

// ArticleWritten signals that an article has been created.
type ArticleWritten struct {
	ArticleID int64 `json:"articleId"`
	AuthorID  int64 `json:"userId"`
}

// Kind implements Event.
func (ArticleWritten) Kind() Kind { return KindWriteArticle }

// CommentWritten signals that a comment has been created. The recipient
// set is derived at consumption time, so the event carries only the
// comment id.
type CommentWritten struct {
	CommentID int64 `json:"commentId"`
}

// Kind implements Event.
func (CommentWritten) Kind() Kind { return KindWriteComment }

// CommentNotify targets a single recipient of a comment notification.
type CommentNotify struct {
	CommentID   int64 `json:"commentId"`
	RecipientID int64 `json:"userId"`
}

// Kind implements Event.
func (CommentNotify) Kind() Kind { return KindSendCommentNotification }
