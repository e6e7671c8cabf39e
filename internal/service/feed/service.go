// Package feed merges stored notices with the live announcement stream
// into one read-consistent, time-windowed feed per user.
package feed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jinhanworks/board-notifier/internal/model"
	"github.com/jinhanworks/board-notifier/internal/repository/notice"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/feed/mocks.go -package=mocks

const announcementNoticeTitle = "An announcement was posted."

type noticeStore interface {
	ListNoticesSince(ctx context.Context, recipientID int64, since time.Time) ([]model.Notice, error)
	MarkNoticeRead(ctx context.Context, id string) error
	UpsertNotice(ctx context.Context, n model.Notice, dedupeKey string) (model.Notice, error)
}

type announcementRepository interface {
	GetAnnouncementByID(ctx context.Context, id int64) (model.Announcement, error)
	ListAnnouncementsCreatedAfter(ctx context.Context, since time.Time) ([]model.Announcement, error)
}

// Item is one feed entry. Synthesized marks an announcement view that has
// no stored notice yet; it materializes into a durable row only when the
// user acts on it.
type Item struct {
	Notice      model.Notice `json:"notice"`
	Synthesized bool         `json:"-"`
}

// Service builds per-user feeds and tracks read state.
type Service struct {
	notices       noticeStore
	announcements announcementRepository
	window        time.Duration
}

// NewService creates a new feed service. window is the recency window;
// notices and announcements older than it are silently excluded.
func NewService(notices noticeStore, announcements announcementRepository, window time.Duration) *Service {
	return &Service{notices: notices, announcements: announcements, window: window}
}

// Feed returns the merged notification feed for userID, most recent
// first. Stored notices that shadow an announcement take precedence over
// the announcement itself, so the user's read state survives the merge;
// announcements without a shadow appear exactly once as unread.
func (s *Service) Feed(ctx context.Context, userID int64) ([]Item, error) {
	since := time.Now().UTC().Add(-s.window)

	stored, err := s.notices.ListNoticesSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}

	items := make([]Item, 0, len(stored))
	shadows := make(map[int64]model.Notice)

	for _, n := range stored {
		if n.SourceAnnouncementID != nil {
			shadows[*n.SourceAnnouncementID] = n
			continue
		}
		items = append(items, Item{Notice: n})
	}

	announcements, err := s.announcements.ListAnnouncementsCreatedAfter(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}

	for _, ann := range announcements {
		if shadow, ok := shadows[ann.ID]; ok {
			items = append(items, Item{Notice: shadow})
			continue
		}

		annID := ann.ID
		items = append(items, Item{
			Notice: model.Notice{
				Title:                announcementNoticeTitle,
				Body:                 ann.Title,
				RecipientID:          userID,
				SourceAnnouncementID: &annID,
				IsRead:               false,
				CreatedAt:            ann.CreatedAt,
			},
			Synthesized: true,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Notice.CreatedAt.After(items[j].Notice.CreatedAt)
	})

	return items, nil
}

// MarkRead marks a stored notice as read. Unknown ids are silently
// accepted, matching the permissive read-side behavior.
func (s *Service) MarkRead(ctx context.Context, noticeID string) error {
	if err := s.notices.MarkNoticeRead(ctx, noticeID); err != nil {
		return fmt.Errorf("mark notice read: %w", err)
	}

	return nil
}

// MarkAnnouncementRead materializes the shadow notice for an announcement
// and marks it read in one idempotent upsert keyed on
// (recipient, announcement). Subsequent feeds see exactly one stored,
// read shadow instead of a synthesized view.
func (s *Service) MarkAnnouncementRead(ctx context.Context, userID, announcementID int64) error {
	ann, err := s.announcements.GetAnnouncementByID(ctx, announcementID)
	if err != nil {
		return fmt.Errorf("resolve announcement %d: %w", announcementID, err)
	}

	now := time.Now().UTC()
	annID := ann.ID
	shadow := model.Notice{
		Title:                announcementNoticeTitle,
		Body:                 ann.Title,
		RecipientID:          userID,
		SourceAnnouncementID: &annID,
		IsRead:               true,
		CreatedAt:            ann.CreatedAt,
		UpdatedAt:            &now,
	}

	if _, err := s.notices.UpsertNotice(ctx, shadow, notice.AnnouncementDedupeKey(ann.ID)); err != nil {
		return fmt.Errorf("materialize announcement notice: %w", err)
	}

	return nil
}
