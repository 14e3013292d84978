package domain

import (
	"context"
	"time"
)

// Comment is a user comment on an event, with the author's display fields.
// swagger:model Comment
type Comment struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	Avatar    *string   `json:"avatar"`
}

// CommentRepository defines the interface for comment storage.
type CommentRepository interface {
	ListByEvent(ctx context.Context, eventID int64) ([]*Comment, error)
	Create(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, eventID, commentID int64) error
}

// CommentService defines the business logic for comments.
type CommentService interface {
	ListComments(ctx context.Context, eventID int64) ([]*Comment, error)
	AddComment(ctx context.Context, eventID, userID int64, text string) (*Comment, error)
	DeleteComment(ctx context.Context, eventID, commentID int64) error
}
