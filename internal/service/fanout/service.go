// Package fanout turns queue events into per-recipient notices.
package fanout

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/jinhanworks/board-notifier/internal/event"
	"github.com/jinhanworks/board-notifier/internal/model"
	"github.com/jinhanworks/board-notifier/internal/repository/notice"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/fanout/mocks.go -package=mocks

// Feed copy for the notices produced by the resolver.
const (
	commentNoticeTitle = "A comment was written."
	articleNoticeTitle = "An article was written."
)

type commentRepository interface {
	GetCommentByID(ctx context.Context, id int64) (model.Comment, error)
	ListAuthorIDsByArticle(ctx context.Context, articleID int64) ([]int64, error)
}

type articleRepository interface {
	GetArticleByID(ctx context.Context, id int64) (model.Article, error)
}

type noticeStore interface {
	AppendNotice(ctx context.Context, n model.Notice, dedupeKey string) (model.Notice, error)
}

type notifyPublisher interface {
	PublishNotify(ev event.CommentNotify) error
}

// Service resolves comment and article events into notices. It is safe
// for concurrent use across different events and idempotent under queue
// redelivery of the same event: the notice store dedupes on
// (recipient, source) and the per-recipient broadcast is a plain
// at-least-once fanout.
type Service struct {
	comments  commentRepository
	articles  articleRepository
	notices   noticeStore
	publisher notifyPublisher
	timeout   time.Duration
}

// NewService creates a new fan-out service. timeout bounds the downstream
// I/O of a single event so a hung store cannot pin a worker forever.
func NewService(
	comments commentRepository,
	articles articleRepository,
	notices noticeStore,
	publisher notifyPublisher,
	timeout time.Duration,
) *Service {
	return &Service{
		comments:  comments,
		articles:  articles,
		notices:   notices,
		publisher: publisher,
		timeout:   timeout,
	}
}

// HandleCommentWritten fans one comment event out to every interested
// user: the comment author, the article author and every distinct prior
// commenter on the article, each exactly once.
//
// All lookups happen before the first notice is written, so a missing
// comment or article aborts the event with nothing persisted. A failure
// mid-loop aborts the rest and reports the event as a unit failure;
// redelivery re-runs it idempotently.
func (s *Service) HandleCommentWritten(ctx context.Context, ev event.CommentWritten) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	comment, err := s.comments.GetCommentByID(ctx, ev.CommentID)
	if err != nil {
		return fmt.Errorf("resolve comment %d: %w", ev.CommentID, err)
	}

	article, err := s.articles.GetArticleByID(ctx, comment.ArticleID)
	if err != nil {
		return fmt.Errorf("resolve article %d: %w", comment.ArticleID, err)
	}

	authorIDs, err := s.comments.ListAuthorIDsByArticle(ctx, article.ID)
	if err != nil {
		return fmt.Errorf("resolve commenters of article %d: %w", article.ID, err)
	}

	recipients := recipientSet(comment.AuthorID, article.AuthorID, authorIDs)

	for _, recipientID := range recipients {
		notify := event.CommentNotify{CommentID: comment.ID, RecipientID: recipientID}
		if err := s.publisher.PublishNotify(notify); err != nil {
			return fmt.Errorf("publish notify for user %d: %w", recipientID, err)
		}

		n := model.Notice{
			Title:       commentNoticeTitle,
			Body:        comment.Content,
			RecipientID: recipientID,
		}

		if _, err := s.notices.AppendNotice(ctx, n, notice.CommentDedupeKey(comment.ID)); err != nil {
			return fmt.Errorf("append notice for user %d: %w", recipientID, err)
		}
	}

	zlog.Logger.Info().
		Int64("comment_id", comment.ID).
		Int("recipients", len(recipients)).
		Msg("comment fan-out complete")

	return nil
}

// HandleArticleWritten records a single notice for the user carried on
// the event. No fan-out is needed for articles.
func (s *Service) HandleArticleWritten(ctx context.Context, ev event.ArticleWritten) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	article, err := s.articles.GetArticleByID(ctx, ev.ArticleID)
	if err != nil {
		return fmt.Errorf("resolve article %d: %w", ev.ArticleID, err)
	}

	n := model.Notice{
		Title:       articleNoticeTitle,
		Body:        article.Title,
		RecipientID: ev.AuthorID,
	}

	if _, err := s.notices.AppendNotice(ctx, n, notice.ArticleDedupeKey(article.ID)); err != nil {
		return fmt.Errorf("append notice for user %d: %w", ev.AuthorID, err)
	}

	return nil
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// recipientSet collapses the comment author, article author and prior
// commenters into a sorted list of distinct user ids. Sorting keeps the
// fan-out order deterministic.
func recipientSet(commentAuthorID, articleAuthorID int64, commenterIDs []int64) []int64 {
	set := map[int64]struct{}{
		commentAuthorID: {},
		articleAuthorID: {},
	}
	for _, id := range commenterIDs {
		set[id] = struct{}{}
	}

	recipients := make([]int64, 0, len(set))
	for id := range set {
		recipients = append(recipients, id)
	}
	sort.Slice(recipients, func(i, j int) bool { return recipients[i] < recipients[j] })

	return recipients
}
