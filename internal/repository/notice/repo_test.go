package notice

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wbfredis "github.com/wb-go/wbf/redis"

	"github.com/jinhanworks/board-notifier/internal/model"
)

func setupRepository(t *testing.T) *Repository {
	t.Helper()

	srv := miniredis.RunT(t)
	return NewRepository(wbfredis.New(srv.Addr(), "", 0))
}

func TestRepository_GetNoticeByID(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	stored, err := repo.AppendNotice(ctx, model.Notice{
		Title:       "A comment was written.",
		Body:        "hello",
		RecipientID: 1,
	}, CommentDedupeKey(42))
	require.NoError(t, err)

	got, err := repo.GetNoticeByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, "hello", got.Body)
	assert.Equal(t, int64(1), got.RecipientID)
	assert.False(t, got.IsRead)
}

func TestRepository_GetNoticeByID_NotFound(t *testing.T) {
	repo := setupRepository(t)

	_, err := repo.GetNoticeByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrNoticeNotFound)
}

func TestRepository_AppendNotice_RedeliveryReturnsExisting(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	n := model.Notice{
		Title:       "A comment was written.",
		Body:        "hello",
		RecipientID: 1,
	}

	first, err := repo.AppendNotice(ctx, n, CommentDedupeKey(42))
	require.NoError(t, err)

	second, err := repo.AppendNotice(ctx, n, CommentDedupeKey(42))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	notices, err := repo.ListNoticesSince(ctx, 1, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Len(t, notices, 1)
}

func TestRepository_AppendNotice_DistinctSourcesCoexist(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	_, err := repo.AppendNotice(ctx, model.Notice{RecipientID: 1, Title: "a"}, CommentDedupeKey(1))
	require.NoError(t, err)
	_, err = repo.AppendNotice(ctx, model.Notice{RecipientID: 1, Title: "b"}, CommentDedupeKey(2))
	require.NoError(t, err)

	notices, err := repo.ListNoticesSince(ctx, 1, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Len(t, notices, 2)
}

func TestRepository_ListNoticesSince_ExcludesOlderNotices(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	now := time.Now().UTC()

	_, err := repo.AppendNotice(ctx, model.Notice{
		RecipientID: 1,
		Title:       "recent",
		CreatedAt:   now.Add(-time.Hour),
	}, CommentDedupeKey(1))
	require.NoError(t, err)

	_, err = repo.AppendNotice(ctx, model.Notice{
		RecipientID: 1,
		Title:       "stale",
		CreatedAt:   now.Add(-8 * 7 * 24 * time.Hour),
	}, CommentDedupeKey(2))
	require.NoError(t, err)

	since := now.Add(-7 * 7 * 24 * time.Hour)
	notices, err := repo.ListNoticesSince(ctx, 1, since)
	require.NoError(t, err)

	require.Len(t, notices, 1)
	assert.Equal(t, "recent", notices[0].Title)
}

func TestRepository_MarkNoticeRead(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	stored, err := repo.AppendNotice(ctx, model.Notice{RecipientID: 1, Title: "a"}, CommentDedupeKey(1))
	require.NoError(t, err)

	require.NoError(t, repo.MarkNoticeRead(ctx, stored.ID))

	got, err := repo.GetNoticeByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)
	assert.NotNil(t, got.UpdatedAt)

	// Marking again stays read and stays silent.
	require.NoError(t, repo.MarkNoticeRead(ctx, stored.ID))

	got, err = repo.GetNoticeByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)
}

func TestRepository_MarkNoticeRead_UnknownIDIsNoOp(t *testing.T) {
	repo := setupRepository(t)

	assert.NoError(t, repo.MarkNoticeRead(context.Background(), "missing-id"))
}

func TestRepository_UpsertNotice_ReadStateNeverRegresses(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	now := time.Now().UTC()
	shadow := model.Notice{
		Title:       "An announcement was posted.",
		Body:        "maintenance window",
		RecipientID: 1,
		IsRead:      true,
		UpdatedAt:   &now,
	}

	first, err := repo.UpsertNotice(ctx, shadow, AnnouncementDedupeKey(7))
	require.NoError(t, err)
	assert.True(t, first.IsRead)

	// A later upsert carrying an unread view keeps the stored read state.
	shadow.IsRead = false
	shadow.UpdatedAt = nil

	second, err := repo.UpsertNotice(ctx, shadow, AnnouncementDedupeKey(7))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.IsRead)
}

func TestRepository_UpsertNotice_RequiresDedupeKey(t *testing.T) {
	repo := setupRepository(t)

	_, err := repo.UpsertNotice(context.Background(), model.Notice{RecipientID: 1}, "")
	assert.Error(t, err)
}
