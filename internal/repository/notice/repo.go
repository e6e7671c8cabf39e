// Package notice implements the per-recipient notification store on top
// of Redis. Notices are schemaless JSON documents, one per key, indexed
// by a per-recipient sorted set scored on creation time. A per-recipient
// dedupe hash maps a source key (comment, article or announcement) to the
// notice id, which makes appends idempotent under queue redelivery.
package notice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	wbfredis "github.com/wb-go/wbf/redis"

	"github.com/jinhanworks/board-notifier/internal/model"
)

var (
	// ErrNoticeNotFound is returned when the referenced notice does not exist.
	ErrNoticeNotFound = errors.New("notice not found")
)

// CommentDedupeKey identifies the notice created for a comment event.
// Dedupe keys tie a notice to its source so re-processing the same event
// never creates a second notice for the same recipient.
func CommentDedupeKey(commentID int64) string { return fmt.Sprintf("comment:%d", commentID) }

// ArticleDedupeKey identifies the notice created for an article event.
func ArticleDedupeKey(articleID int64) string { return fmt.Sprintf("article:%d", articleID) }

// AnnouncementDedupeKey identifies the shadow notice for an announcement.
func AnnouncementDedupeKey(announcementID int64) string {
	return fmt.Sprintf("announce:%d", announcementID)
}

// Repository provides append, window reads and read-state updates over
// the notice documents.
type Repository struct {
	rdb *wbfredis.Client
}

// NewRepository creates a new notice repository.
func NewRepository(rdb *wbfredis.Client) *Repository {
	return &Repository{rdb: rdb}
}

func noticeKey(id string) string       { return "notice:" + id }
func feedKey(recipientID int64) string { return fmt.Sprintf("notices:%d", recipientID) }

func dedupeHashKey(recipientID int64) string {
	return fmt.Sprintf("notices:dedupe:%d", recipientID)
}

// AppendNotice stores a new notice for its recipient. A missing id is
// assigned, CreatedAt defaults to now and IsRead to false. When dedupeKey
// is non-empty and a notice for the same (recipient, dedupeKey) pair
// already exists, the existing notice is returned unchanged.
func (r *Repository) AppendNotice(ctx context.Context, n model.Notice, dedupeKey string) (model.Notice, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	if dedupeKey != "" {
		created, err := r.rdb.HSetNX(ctx, dedupeHashKey(n.RecipientID), dedupeKey, n.ID).Result()
		if err != nil {
			return model.Notice{}, fmt.Errorf("notice store: claim dedupe key: %w", err)
		}

		if !created {
			existingID, err := r.rdb.HGet(ctx, dedupeHashKey(n.RecipientID), dedupeKey).Result()
			if err != nil {
				return model.Notice{}, fmt.Errorf("notice store: read dedupe key: %w", err)
			}

			existing, err := r.GetNoticeByID(ctx, existingID)
			if err != nil && !errors.Is(err, ErrNoticeNotFound) {
				return model.Notice{}, err
			}
			if err == nil {
				return existing, nil
			}
			// Index entry without a document: fall through and write
			// the document under the already claimed id.
			n.ID = existingID
		}
	}

	if err := r.writeNotice(ctx, n); err != nil {
		return model.Notice{}, err
	}

	return n, nil
}

// ListNoticesSince returns every notice for the recipient with
// CreatedAt >= since. Ordering is left to the caller.
func (r *Repository) ListNoticesSince(ctx context.Context, recipientID int64, since time.Time) ([]model.Notice, error) {
	ids, err := r.rdb.ZRangeByScore(ctx, feedKey(recipientID), &redis.ZRangeBy{
		Min: strconv.FormatInt(since.UnixMilli(), 10),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("notice store: list since: %w", err)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, noticeKey(id))
	}

	docs, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("notice store: fetch documents: %w", err)
	}

	notices := make([]model.Notice, 0, len(docs))
	for _, doc := range docs {
		raw, ok := doc.(string)
		if !ok {
			continue // index entry without a document
		}

		var n model.Notice
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			return nil, fmt.Errorf("notice store: decode document: %w", err)
		}

		if n.CreatedAt.Before(since) {
			continue
		}

		notices = append(notices, n)
	}

	return notices, nil
}

// GetNoticeByID retrieves a single notice document.
func (r *Repository) GetNoticeByID(ctx context.Context, id string) (model.Notice, error) {
	raw, err := r.rdb.Get(ctx, noticeKey(id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Notice{}, ErrNoticeNotFound
		}

		return model.Notice{}, fmt.Errorf("notice store: get document: %w", err)
	}

	var n model.Notice
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return model.Notice{}, fmt.Errorf("notice store: decode document: %w", err)
	}

	return n, nil
}

// MarkNoticeRead flips the read flag on a notice. Marking an unknown or
// already-read notice is a silent no-op; the transition is monotonic.
func (r *Repository) MarkNoticeRead(ctx context.Context, id string) error {
	n, err := r.GetNoticeByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNoticeNotFound) {
			return nil
		}

		return err
	}

	if n.IsRead {
		return nil
	}

	now := time.Now().UTC()
	n.IsRead = true
	n.UpdatedAt = &now

	return r.writeNotice(ctx, n)
}

// UpsertNotice materializes or updates a notice keyed by
// (recipient, dedupeKey). A new document is created when none exists;
// otherwise the stored document keeps its id and CreatedAt, the read
// flag only ever moves to true, and title/body are refreshed.
func (r *Repository) UpsertNotice(ctx context.Context, n model.Notice, dedupeKey string) (model.Notice, error) {
	if dedupeKey == "" {
		return model.Notice{}, fmt.Errorf("notice store: upsert requires a dedupe key")
	}

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	created, err := r.rdb.HSetNX(ctx, dedupeHashKey(n.RecipientID), dedupeKey, n.ID).Result()
	if err != nil {
		return model.Notice{}, fmt.Errorf("notice store: claim dedupe key: %w", err)
	}

	if !created {
		existingID, err := r.rdb.HGet(ctx, dedupeHashKey(n.RecipientID), dedupeKey).Result()
		if err != nil {
			return model.Notice{}, fmt.Errorf("notice store: read dedupe key: %w", err)
		}

		existing, err := r.GetNoticeByID(ctx, existingID)
		if err != nil && !errors.Is(err, ErrNoticeNotFound) {
			return model.Notice{}, err
		}

		n.ID = existingID
		if err == nil {
			n.CreatedAt = existing.CreatedAt
			n.IsRead = n.IsRead || existing.IsRead // read state never regresses
			if n.UpdatedAt == nil {
				n.UpdatedAt = existing.UpdatedAt
			}
		}
	}

	if err := r.writeNotice(ctx, n); err != nil {
		return model.Notice{}, err
	}

	return n, nil
}

// writeNotice stores the document and its feed index entry atomically.
func (r *Repository) writeNotice(ctx context.Context, n model.Notice) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("notice store: encode document: %w", err)
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, noticeKey(n.ID), body, 0)
	pipe.ZAdd(ctx, feedKey(n.RecipientID), &redis.Z{
		Score:  float64(n.CreatedAt.UnixMilli()),
		Member: n.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("notice store: write document: %w", err)
	}

	return nil
}
