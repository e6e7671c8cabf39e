package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	events := []Event{
		ArticleWritten{ArticleID: 7, AuthorID: 1},
		CommentWritten{CommentID: 42},
		CommentNotify{CommentID: 42, RecipientID: 3},
	}

	for _, want := range events {
		body, err := Encode(want)
		require.NoError(t, err)

		got, err := Decode(body)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDecode_LegacyText(t *testing.T) {
	got, err := Decode([]byte("WriteComment(type=after_write, commentId=42)"))
	require.NoError(t, err)
	assert.Equal(t, CommentWritten{CommentID: 42}, got)

	got, err = Decode([]byte("WriteArticle(type=after_write, articleId=7, userId=1)"))
	require.NoError(t, err)
	assert.Equal(t, ArticleWritten{ArticleID: 7, AuthorID: 1}, got)

	got, err = Decode([]byte("SendCommentNotification(commentId=42, userId=3)"))
	require.NoError(t, err)
	assert.Equal(t, CommentNotify{CommentID: 42, RecipientID: 3}, got)
}

func TestDecode_LegacyTextTrimsWhitespace(t *testing.T) {
	got, err := Decode([]byte("  WriteComment( commentId = 42 , type = x )  "))
	require.NoError(t, err)
	assert.Equal(t, CommentWritten{CommentID: 42}, got)
}

func TestDecode_MissingKeysDefaultToZero(t *testing.T) {
	got, err := Decode([]byte("WriteArticle(type=after_write)"))
	require.NoError(t, err)
	assert.Equal(t, ArticleWritten{}, got)

	got, err = Decode([]byte(`{"kind":"WriteComment","payload":{}}`))
	require.NoError(t, err)
	assert.Equal(t, CommentWritten{}, got)
}

func TestDecode_UnknownFieldsIgnored(t *testing.T) {
	got, err := Decode([]byte(`{"kind":"WriteComment","payload":{"commentId":42,"extra":"x"}}`))
	require.NoError(t, err)
	assert.Equal(t, CommentWritten{CommentID: 42}, got)
}

func TestDecode_UnknownKind(t *testing.T) {
	for _, body := range []string{
		`{"kind":"DeleteComment","payload":{}}`,
		"DeleteComment(commentId=42)",
	} {
		_, err := Decode([]byte(body))
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "DeleteComment", decodeErr.Kind)
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, body := range []string{
		"",
		"   ",
		"garbage",
		"WriteComment(commentId=notanumber)",
		`{"kind":`,
	} {
		_, err := Decode([]byte(body))
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr, "payload %q", body)
	}
}
