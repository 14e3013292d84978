package domain

import (
	"context"
	"time"
)

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Rating is one user's score for one event.
type Rating struct {
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	Value     int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingSummary aggregates the ratings of all events created by a user.
// swagger:model RatingSummary
type RatingSummary struct {
	UserID  int64   `json:"user_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// RatingRepository defines the interface for rating storage.
type RatingRepository interface {
	// Upsert stores the rating, replacing an earlier rating by the same user for the same event.
	Upsert(ctx context.Context, rating *Rating) error
	SummaryForCreator(ctx context.Context, userID int64) (*RatingSummary, error)
}
