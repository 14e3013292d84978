package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventplanner/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	ratingRepo     domain.RatingRepository
	images         domain.ImageStore
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewEventService(
	eventRepo domain.EventRepository,
	ratingRepo domain.RatingRepository,
	images domain.ImageStore,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		ratingRepo:     ratingRepo,
		images:         images,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.CreatedBy == nil || *event.CreatedBy <= 0 {
		return fmt.Errorf("%w: event creator is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(event.Title) == "" || strings.TrimSpace(event.Description) == "" ||
		strings.TrimSpace(event.Location) == "" || event.Date.IsZero() {
		return fmt.Errorf("%w: title, description, date and location are required", domain.ErrInvalidInput)
	}
	if event.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrInvalidInput)
	}
	event.AttendeesCount = 0
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) ListEvents(ctx context.Context, createdBy *int64) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx, createdBy)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes the event and its dependent rows, then its image file.
func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if id <= 0 {
		return domain.ErrInvalidInput
	}
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	if event.Image != nil && s.images != nil {
		if err := s.images.Remove(*event.Image); err != nil {
			s.logger.WarnContext(ctx, "event image not removed", "event_id", id, "image", *event.Image, "err", err)
		}
	}
	return nil
}

func (s *eventService) RateEvent(ctx context.Context, eventID, userID int64, rating int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if eventID <= 0 || userID <= 0 {
		return domain.ErrInvalidInput
	}
	if rating < domain.MinRating || rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", domain.ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	r := &domain.Rating{EventID: eventID, UserID: userID, Value: rating, CreatedAt: time.Now()}
	if err := s.ratingRepo.Upsert(ctx, r); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("rate event: %w", err)
	}
	return nil
}
