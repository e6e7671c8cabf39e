package article

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/jinhanworks/board-notifier/internal/event"
	"github.com/jinhanworks/board-notifier/internal/model"
)

type articleRepository interface {
	CreateArticle(ctx context.Context, article model.Article) (model.Article, error)
	GetArticleByID(ctx context.Context, id int64) (model.Article, error)
}

type eventPublisher interface {
	PublishEvent(ev event.Event) error
}

// Service handles the article write path.
type Service struct {
	repo  articleRepository
	queue eventPublisher
}

// NewService creates a new article service.
func NewService(repo articleRepository, queue eventPublisher) *Service {
	return &Service{repo: repo, queue: queue}
}

// WriteArticle persists a new article and then publishes an
// ArticleWritten event. The publish happens strictly after the insert
// commits and is best-effort: a broker failure is logged and never fails
// the write.
func (s *Service) WriteArticle(ctx context.Context, authorID, boardID int64, title, content string) (model.Article, error) {
	article, err := s.repo.CreateArticle(ctx, model.Article{
		BoardID:  boardID,
		AuthorID: authorID,
		Title:    title,
		Content:  content,
	})
	if err != nil {
		return model.Article{}, fmt.Errorf("create article: %w", err)
	}

	ev := event.ArticleWritten{ArticleID: article.ID, AuthorID: article.AuthorID}
	if err := s.queue.PublishEvent(ev); err != nil {
		zlog.Logger.Error().Err(err).
			Int64("article_id", article.ID).
			Msg("failed to publish article event")
	}

	return article, nil
}

// GetArticle retrieves a single article.
func (s *Service) GetArticle(ctx context.Context, id int64) (model.Article, error) {
	article, err := s.repo.GetArticleByID(ctx, id)
	if err != nil {
		return model.Article{}, fmt.Errorf("get article: %w", err)
	}

	return article, nil
}
