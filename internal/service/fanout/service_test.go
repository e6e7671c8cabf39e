package fanout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinhanworks/board-notifier/internal/event"
	mocks "github.com/jinhanworks/board-notifier/internal/mocks/service/fanout"
	"github.com/jinhanworks/board-notifier/internal/model"
	articlerepo "github.com/jinhanworks/board-notifier/internal/repository/article"
	commentrepo "github.com/jinhanworks/board-notifier/internal/repository/comment"
)

func setupService(t *testing.T) (*Service, *mocks.MockcommentRepository, *mocks.MockarticleRepository, *mocks.MocknoticeStore, *mocks.MocknotifyPublisher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	comments := mocks.NewMockcommentRepository(ctrl)
	articles := mocks.NewMockarticleRepository(ctrl)
	notices := mocks.NewMocknoticeStore(ctrl)
	publisher := mocks.NewMocknotifyPublisher(ctrl)

	svc := NewService(comments, articles, notices, publisher, time.Second)
	return svc, comments, articles, notices, publisher
}

// Comment 42 on article 7 (author U1), prior commenters {U2, U3}, new
// comment author U2: exactly three notices, U2 only once despite its
// dual role.
func TestHandleCommentWritten_DistinctRecipients(t *testing.T) {
	svc, comments, articles, notices, publisher := setupService(t)

	comment := model.Comment{ID: 42, ArticleID: 7, AuthorID: 2, Content: "nice article"}
	article := model.Article{ID: 7, AuthorID: 1}

	comments.EXPECT().GetCommentByID(gomock.Any(), int64(42)).Return(comment, nil)
	articles.EXPECT().GetArticleByID(gomock.Any(), int64(7)).Return(article, nil)
	comments.EXPECT().ListAuthorIDsByArticle(gomock.Any(), int64(7)).Return([]int64{2, 3}, nil)

	var notified []int64
	publisher.EXPECT().PublishNotify(gomock.Any()).DoAndReturn(func(ev event.CommentNotify) error {
		assert.Equal(t, int64(42), ev.CommentID)
		notified = append(notified, ev.RecipientID)
		return nil
	}).Times(3)

	var appended []model.Notice
	notices.EXPECT().AppendNotice(gomock.Any(), gomock.Any(), "comment:42").DoAndReturn(
		func(_ context.Context, n model.Notice, _ string) (model.Notice, error) {
			appended = append(appended, n)
			return n, nil
		},
	).Times(3)

	err := svc.HandleCommentWritten(context.Background(), event.CommentWritten{CommentID: 42})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int64{1, 2, 3}, notified)
	require.Len(t, appended, 3)
	for _, n := range appended {
		assert.Equal(t, "nice article", n.Body)
		assert.False(t, n.IsRead)
	}
}

func TestHandleCommentWritten_CommentMissing(t *testing.T) {
	svc, comments, _, _, _ := setupService(t)

	comments.EXPECT().GetCommentByID(gomock.Any(), int64(42)).
		Return(model.Comment{}, commentrepo.ErrCommentNotFound)

	err := svc.HandleCommentWritten(context.Background(), event.CommentWritten{CommentID: 42})
	assert.ErrorIs(t, err, commentrepo.ErrCommentNotFound)
}

func TestHandleCommentWritten_ArticleMissingAbortsBeforeAppend(t *testing.T) {
	svc, comments, articles, _, _ := setupService(t)

	comment := model.Comment{ID: 42, ArticleID: 7, AuthorID: 2}
	comments.EXPECT().GetCommentByID(gomock.Any(), int64(42)).Return(comment, nil)
	articles.EXPECT().GetArticleByID(gomock.Any(), int64(7)).
		Return(model.Article{}, articlerepo.ErrArticleNotFound)

	// No publish and no append may happen: lookups fail before fan-out.
	err := svc.HandleCommentWritten(context.Background(), event.CommentWritten{CommentID: 42})
	assert.ErrorIs(t, err, articlerepo.ErrArticleNotFound)
}

func TestHandleCommentWritten_StoreFailureAbortsUnit(t *testing.T) {
	svc, comments, articles, notices, publisher := setupService(t)

	comment := model.Comment{ID: 42, ArticleID: 7, AuthorID: 1}
	article := model.Article{ID: 7, AuthorID: 1}
	storeErr := errors.New("notice store: connection refused")

	comments.EXPECT().GetCommentByID(gomock.Any(), int64(42)).Return(comment, nil)
	articles.EXPECT().GetArticleByID(gomock.Any(), int64(7)).Return(article, nil)
	comments.EXPECT().ListAuthorIDsByArticle(gomock.Any(), int64(7)).Return([]int64{2}, nil)

	// Recipients fan out in sorted order, so user 1 goes first and the
	// failure stops user 2 from being processed.
	publisher.EXPECT().PublishNotify(event.CommentNotify{CommentID: 42, RecipientID: 1}).Return(nil)
	notices.EXPECT().AppendNotice(gomock.Any(), gomock.Any(), "comment:42").
		Return(model.Notice{}, storeErr)

	err := svc.HandleCommentWritten(context.Background(), event.CommentWritten{CommentID: 42})
	assert.ErrorIs(t, err, storeErr)
}

// Redelivering the same event re-runs the same appends with the same
// dedupe key; the store returns the existing notices and no new ones
// are created.
func TestHandleCommentWritten_RedeliveryIsIdempotent(t *testing.T) {
	svc, comments, articles, notices, publisher := setupService(t)

	comment := model.Comment{ID: 42, ArticleID: 7, AuthorID: 1, Content: "hi"}
	article := model.Article{ID: 7, AuthorID: 1}
	existing := model.Notice{ID: "existing", RecipientID: 1, Body: "hi"}

	comments.EXPECT().GetCommentByID(gomock.Any(), int64(42)).Return(comment, nil).Times(2)
	articles.EXPECT().GetArticleByID(gomock.Any(), int64(7)).Return(article, nil).Times(2)
	comments.EXPECT().ListAuthorIDsByArticle(gomock.Any(), int64(7)).Return([]int64{1}, nil).Times(2)
	publisher.EXPECT().PublishNotify(gomock.Any()).Return(nil).Times(2)
	notices.EXPECT().AppendNotice(gomock.Any(), gomock.Any(), "comment:42").
		Return(existing, nil).Times(2)

	for i := 0; i < 2; i++ {
		require.NoError(t, svc.HandleCommentWritten(context.Background(), event.CommentWritten{CommentID: 42}))
	}
}

func TestHandleArticleWritten(t *testing.T) {
	svc, _, articles, notices, _ := setupService(t)

	article := model.Article{ID: 7, AuthorID: 1, Title: "hello"}
	articles.EXPECT().GetArticleByID(gomock.Any(), int64(7)).Return(article, nil)
	notices.EXPECT().AppendNotice(gomock.Any(), gomock.Any(), "article:7").DoAndReturn(
		func(_ context.Context, n model.Notice, _ string) (model.Notice, error) {
			assert.Equal(t, int64(1), n.RecipientID)
			assert.Equal(t, "hello", n.Body)
			return n, nil
		},
	)

	err := svc.HandleArticleWritten(context.Background(), event.ArticleWritten{ArticleID: 7, AuthorID: 1})
	require.NoError(t, err)
}

func TestHandleArticleWritten_ArticleMissing(t *testing.T) {
	svc, _, articles, _, _ := setupService(t)

	articles.EXPECT().GetArticleByID(gomock.Any(), int64(7)).
		Return(model.Article{}, articlerepo.ErrArticleNotFound)

	err := svc.HandleArticleWritten(context.Background(), event.ArticleWritten{ArticleID: 7, AuthorID: 1})
	assert.ErrorIs(t, err, articlerepo.ErrArticleNotFound)
}

func TestRecipientSet(t *testing.T) {
	got := recipientSet(2, 1, []int64{2, 3, 3, 1})
	assert.Equal(t, []int64{1, 2, 3}, got)

	got = recipientSet(5, 5, nil)
	assert.Equal(t, []int64{5}, got)
}
