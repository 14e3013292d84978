package domain

import (
	"context"
	"time"
)

// Registration records a user's attendance at an event.
type Registration struct {
	UserID    int64     `json:"user_id"`
	EventID   int64     `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RegistrationRepository defines storage operations for registrations.
// Attend and Unattend keep events.attendees_count in step with the registration set
// inside a single transaction.
type RegistrationRepository interface {
	Exists(ctx context.Context, eventID, userID int64) (bool, error)
	// Attend increments the counter only while it is below capacity and inserts the registration.
	// It returns ErrCapacityExceeded or ErrAlreadyRegistered without leaving partial writes.
	Attend(ctx context.Context, eventID, userID int64, at time.Time) error
	// Unattend deletes the registration and decrements the counter.
	// It returns ErrAttendanceNotFound when there was no registration.
	Unattend(ctx context.Context, eventID, userID int64) error
	ListEventIDsByUser(ctx context.Context, userID int64) ([]int64, error)
}

// Favorite records a user's bookmark of an event.
type Favorite struct {
	UserID    int64     `json:"user_id"`
	EventID   int64     `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoriteRepository defines storage operations for favorites.
type FavoriteRepository interface {
	Exists(ctx context.Context, eventID, userID int64) (bool, error)
	Add(ctx context.Context, fav *Favorite) error
	Remove(ctx context.Context, eventID, userID int64) error
	ListEventsByUser(ctx context.Context, userID int64) ([]*Event, error)
}

// AttendanceService manages attendance, registration and favorites for a user and an event.
type AttendanceService interface {
	MarkAttendance(ctx context.Context, eventID, userID int64) error
	RemoveAttendance(ctx context.Context, eventID, userID int64) error
	RegisterForEvent(ctx context.Context, eventID, userID int64) error
	// ToggleFavorite returns true when the event is now a favorite, false when it was unmarked.
	ToggleFavorite(ctx context.Context, eventID, userID int64) (bool, error)
	ListFavorites(ctx context.Context, userID int64) ([]*Event, error)
	// AttendanceStatus maps every event id the user is registered for to true.
	AttendanceStatus(ctx context.Context, userID int64) (map[int64]bool, error)
}
