package announcement

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"

	"github.com/jinhanworks/board-notifier/internal/model"
)

var (
	// ErrAnnouncementNotFound is returned when the referenced announcement does not exist.
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// Repository provides read-mostly access to the announcements table.
// Announcements are immutable once created.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new announcement repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateAnnouncement inserts a new announcement and returns it with the assigned id.
func (r *Repository) CreateAnnouncement(ctx context.Context, a model.Announcement) (model.Announcement, error) {
	query := `
		INSERT INTO announcements (author_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
    `

	err := r.db.QueryRowContext(ctx, query, a.AuthorID, a.Title, a.Content).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return model.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return a, nil
}

// GetAnnouncementByID retrieves a single announcement by its id.
func (r *Repository) GetAnnouncementByID(ctx context.Context, id int64) (model.Announcement, error) {
	query := `
		SELECT id, author_id, title, content, created_at
		FROM announcements
		WHERE id = $1;
    `

	var a model.Announcement
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.AuthorID, &a.Title, &a.Content, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Announcement{}, ErrAnnouncementNotFound
		}

		return model.Announcement{}, fmt.Errorf("failed to get announcement: %w", err)
	}

	return a, nil
}

// ListAnnouncementsCreatedAfter returns every announcement created at or
// after the given time, newest first.
func (r *Repository) ListAnnouncementsCreatedAfter(ctx context.Context, since time.Time) ([]model.Announcement, error) {
	query := `
		SELECT id, author_id, title, content, created_at
		FROM announcements
		WHERE created_at >= $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []model.Announcement
	for rows.Next() {
		var a model.Announcement
		if err := rows.Scan(&a.ID, &a.AuthorID, &a.Title, &a.Content, &a.CreatedAt); err != nil {
			return nil, err
		}

		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}
