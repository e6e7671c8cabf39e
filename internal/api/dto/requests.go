package dto

// WriteArticleRequest is the payload for creating an article.
type WriteArticleRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// WriteCommentRequest is the payload for creating a comment.
type WriteCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// WriteAnnouncementRequest is the payload for creating an announcement.
type WriteAnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}
