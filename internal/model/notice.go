package model

import "time"

// Notice represents one per-recipient notification record.
//
// Notices live in the document store, partitioned from the relational
// domain. A notice with a non-nil SourceAnnouncementID shadows a broadcast
// Announcement and carries the recipient's read state for it.
type Notice struct {
	ID                   string     `json:"id"`                               // opaque document id
	Title                string     `json:"title"`                            // short headline shown in the feed
	Body                 string     `json:"body"`                             // comment content or announcement title
	RecipientID          int64      `json:"recipient_id"`                     // user the notice is addressed to
	SourceAnnouncementID *int64     `json:"source_announcement_id,omitempty"` // set only for announcement shadows
	IsRead               bool       `json:"is_read"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty"` // set when the read flag flips
}
