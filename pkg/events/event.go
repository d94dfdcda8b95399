package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType defines the type of a comment event.
type EventType string

const (
	EventTypeCommentDeleted EventType = "comment.deleted"
)

// CommentEvent is the envelope published for changes to comments.
type CommentEvent struct {
	ID        string    `json:"id"`        // Unique event ID (UUID)
	Type      EventType `json:"type"`      // Event type
	Timestamp time.Time `json:"timestamp"` // When the change happened

	CommentID string `json:"comment_id"`
}

// NewCommentDeletedEvent returns the event published after a comment is
// deleted.
func NewCommentDeletedEvent(commentID string) CommentEvent {
	return CommentEvent{
		ID:        uuid.NewString(),
		Type:      EventTypeCommentDeleted,
		Timestamp: time.Now().UTC(),
		CommentID: commentID,
	}
}

// partitionKey keeps all events for the same comment in order.
func (e CommentEvent) partitionKey() string {
	if e.CommentID != "" {
		return "comment:" + e.CommentID
	}
	return e.ID
}
