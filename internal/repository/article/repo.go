package article

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/jinhanworks/board-notifier/internal/model"
)

var (
	// ErrArticleNotFound is returned when the referenced article does not exist.
	ErrArticleNotFound = errors.New("article not found")
)

// Repository provides access to the articles table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new article repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateArticle inserts a new article and returns it with the assigned id.
func (r *Repository) CreateArticle(ctx context.Context, article model.Article) (model.Article, error) {
	query := `
		INSERT INTO articles (board_id, author_id, title, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at;
    `

	err := r.db.QueryRowContext(
		ctx, query, article.BoardID, article.AuthorID, article.Title, article.Content,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to create article: %w", err)
	}

	return article, nil
}

// GetArticleByID retrieves a single article by its id.
func (r *Repository) GetArticleByID(ctx context.Context, id int64) (model.Article, error) {
	query := `
		SELECT id, board_id, author_id, title, content, created_at, updated_at
		FROM articles
		WHERE id = $1;
    `

	var a model.Article
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.BoardID, &a.AuthorID, &a.Title, &a.Content, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Article{}, ErrArticleNotFound
		}

		return model.Article{}, fmt.Errorf("failed to get article: %w", err)
	}

	return a, nil
}
