package comment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/jinhanworks/board-notifier/internal/model"
)

var (
	// ErrCommentNotFound is returned when the referenced comment does not exist.
	ErrCommentNotFound = errors.New("comment not found")
)

// Repository provides access to the comments table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new comment repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateComment inserts a new comment and returns it with the assigned id.
func (r *Repository) CreateComment(ctx context.Context, comment model.Comment) (model.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at;
    `

	err := r.db.QueryRowContext(
		ctx, query, comment.ArticleID, comment.AuthorID, comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// GetCommentByID retrieves a single comment by its id.
func (r *Repository) GetCommentByID(ctx context.Context, id int64) (model.Comment, error) {
	query := `
		SELECT id, article_id, author_id, content, created_at, updated_at
		FROM comments
		WHERE id = $1;
    `

	var c model.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.ArticleID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Comment{}, ErrCommentNotFound
		}

		return model.Comment{}, fmt.Errorf("failed to get comment: %w", err)
	}

	return c, nil
}

// ListAuthorIDsByArticle returns the distinct author ids of every comment
// under the given article.
func (r *Repository) ListAuthorIDsByArticle(ctx context.Context, articleID int64) ([]int64, error) {
	query := `
		SELECT DISTINCT author_id
		FROM comments
		WHERE article_id = $1;
    `

	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comment authors: %w", err)
	}
	defer rows.Close()

	var authorIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		authorIDs = append(authorIDs, id)
	}

	return authorIDs, rows.Err()
}
