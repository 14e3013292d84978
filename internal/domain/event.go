package domain

import (
	"context"
	"time"
)

// Event represents a planned event.
// AttendeesCount mirrors the number of registrations and never exceeds Capacity.
// swagger:model Event
type Event struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	Capacity        int       `json:"capacity"`
	AttendeesCount  int       `json:"attendees_count"`
	Image           *string   `json:"image"`
	CreatedBy       *int64    `json:"created_by"`
	CreatorUsername *string   `json:"creator_username,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(title, description, location string, date time.Time, capacity int, createdBy int64, createdAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Date:        date,
		Location:    location,
		Capacity:    capacity,
		CreatedBy:   &createdBy,
		CreatedAt:   createdAt,
	}
}

// EventAttendance is the capacity snapshot read before attendance writes.
type EventAttendance struct {
	Capacity       int
	AttendeesCount int
}

// Full reports whether no seat is left.
func (a EventAttendance) Full() bool {
	return a.AttendeesCount >= a.Capacity
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	// List returns all events, or only those created by createdBy when it is non-nil.
	List(ctx context.Context, createdBy *int64) ([]*Event, error)
	GetAttendance(ctx context.Context, id int64) (*EventAttendance, error)
	// Delete removes the event together with its comments, registrations, favorites and ratings.
	Delete(ctx context.Context, id int64) error
}

// EventService defines the business logic for events.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	ListEvents(ctx context.Context, createdBy *int64) ([]*Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	RateEvent(ctx context.Context, eventID, userID int64, rating int) error
}
