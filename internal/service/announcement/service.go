package announcement

import (
	"context"
	"fmt"

	"github.com/jinhanworks/board-notifier/internal/model"
)

type announcementRepository interface {
	CreateAnnouncement(ctx context.Context, a model.Announcement) (model.Announcement, error)
	GetAnnouncementByID(ctx context.Context, id int64) (model.Announcement, error)
}

type readTracker interface {
	MarkAnnouncementRead(ctx context.Context, userID, announcementID int64) error
}

// Service handles announcement writes and reads. Announcements bypass the
// queue entirely: they reach users through the feed merge on read.
type Service struct {
	repo announcementRepository
	feed readTracker
}

// NewService creates a new announcement service.
func NewService(repo announcementRepository, feed readTracker) *Service {
	return &Service{repo: repo, feed: feed}
}

// WriteAnnouncement persists a new platform-wide announcement.
func (s *Service) WriteAnnouncement(ctx context.Context, authorID int64, title, content string) (model.Announcement, error) {
	a, err := s.repo.CreateAnnouncement(ctx, model.Announcement{
		AuthorID: authorID,
		Title:    title,
		Content:  content,
	})
	if err != nil {
		return model.Announcement{}, fmt.Errorf("create announcement: %w", err)
	}

	return a, nil
}

// GetAnnouncement returns an announcement and records that the user has
// seen it: viewing materializes the read shadow notice, so the feed stops
// reporting the announcement as unread.
func (s *Service) GetAnnouncement(ctx context.Context, userID, id int64) (model.Announcement, error) {
	a, err := s.repo.GetAnnouncementByID(ctx, id)
	if err != nil {
		return model.Announcement{}, fmt.Errorf("get announcement: %w", err)
	}

	if err := s.feed.MarkAnnouncementRead(ctx, userID, a.ID); err != nil {
		return model.Announcement{}, fmt.Errorf("record announcement view: %w", err)
	}

	return a, nil
}
