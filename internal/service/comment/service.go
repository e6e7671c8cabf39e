package comment

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/jinhanworks/board-notifier/internal/event"
	"github.com/jinhanworks/board-notifier/internal/model"
)

type commentRepository interface {
	CreateComment(ctx context.Context, comment model.Comment) (model.Comment, error)
}

type articleRepository interface {
	GetArticleByID(ctx context.Context, id int64) (model.Article, error)
}

type eventPublisher interface {
	PublishEvent(ev event.Event) error
}

// Service handles the comment write path.
type Service struct {
	comments commentRepository
	articles articleRepository
	queue    eventPublisher
}

// NewService creates a new comment service.
func NewService(comments commentRepository, articles articleRepository, queue eventPublisher) *Service {
	return &Service{comments: comments, articles: articles, queue: queue}
}

// WriteComment persists a new comment under an article and then publishes
// a CommentWritten event. The publish is best-effort after the insert
// commits; a broker failure is logged, the comment write still succeeds.
func (s *Service) WriteComment(ctx context.Context, authorID, articleID int64, content string) (model.Comment, error) {
	if _, err := s.articles.GetArticleByID(ctx, articleID); err != nil {
		return model.Comment{}, fmt.Errorf("validate article: %w", err)
	}

	comment, err := s.comments.CreateComment(ctx, model.Comment{
		ArticleID: articleID,
		AuthorID:  authorID,
		Content:   content,
	})
	if err != nil {
		return model.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	ev := event.CommentWritten{CommentID: comment.ID}
	if err := s.queue.PublishEvent(ev); err != nil {
		zlog.Logger.Error().Err(err).
			Int64("comment_id", comment.ID).
			Msg("failed to publish comment event")
	}

	return comment, nil
}
