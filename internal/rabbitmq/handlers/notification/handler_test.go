package notification

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/jinhanworks/board-notifier/internal/event"
	mocks "github.com/jinhanworks/board-notifier/internal/mocks/rabbitmq/handlers/notification"
	"github.com/jinhanworks/board-notifier/internal/repository/comment"
)

func TestHandler_HandleMessage_CommentWritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockfanoutService(ctrl)
	h := NewHandler(mockService)

	body, err := event.Encode(event.CommentWritten{CommentID: 42})
	require.NoError(t, err)

	mockService.EXPECT().
		HandleCommentWritten(gomock.Any(), event.CommentWritten{CommentID: 42}).
		Return(nil)

	h.HandleMessage(context.Background(), body)
}

func TestHandler_HandleMessage_ArticleWritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockfanoutService(ctrl)
	h := NewHandler(mockService)

	mockService.EXPECT().
		HandleArticleWritten(gomock.Any(), event.ArticleWritten{ArticleID: 7, AuthorID: 1}).
		Return(nil)

	// Legacy text envelopes still reach the same dispatch.
	h.HandleMessage(context.Background(), []byte("WriteArticle(type=after_write, articleId=7, userId=1)"))
}

func TestHandler_HandleMessage_UndecodableDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockfanoutService(ctrl)
	h := NewHandler(mockService)

	// No dispatch expectations: the message is dropped.
	h.HandleMessage(context.Background(), []byte("garbage"))
}

func TestHandler_HandleMessage_MissingReferenceDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockfanoutService(ctrl)
	h := NewHandler(mockService)

	body, err := event.Encode(event.CommentWritten{CommentID: 42})
	require.NoError(t, err)

	mockService.EXPECT().
		HandleCommentWritten(gomock.Any(), event.CommentWritten{CommentID: 42}).
		Return(comment.ErrCommentNotFound)

	// The handler logs and drops; nothing panics and nothing retries.
	h.HandleMessage(context.Background(), body)
}

func TestHandler_HandleMessage_IgnoresForeignKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockfanoutService(ctrl)
	h := NewHandler(mockService)

	body, err := event.Encode(event.CommentNotify{CommentID: 42, RecipientID: 3})
	require.NoError(t, err)

	h.HandleMessage(context.Background(), body)
}
