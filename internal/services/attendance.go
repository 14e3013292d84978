package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventplanner/internal/domain"
)

type attendanceService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	favoriteRepo     domain.FavoriteRepository
	now              func() time.Time
}

// NewAttendanceService creates an AttendanceService with the given repositories.
func NewAttendanceService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	favoriteRepo domain.FavoriteRepository,
) domain.AttendanceService {
	return &attendanceService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		favoriteRepo:     favoriteRepo,
		now:              time.Now,
	}
}

func validPair(eventID, userID int64) error {
	if eventID <= 0 || userID <= 0 {
		return fmt.Errorf("%w: event id and user id are required", domain.ErrInvalidInput)
	}
	return nil
}

func (s *attendanceService) attendance(ctx context.Context, eventID int64) (*domain.EventAttendance, error) {
	a, err := s.eventRepo.GetAttendance(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event attendance: %w", err)
	}
	return a, nil
}

// MarkAttendance checks capacity, then the existing registration, then takes a seat.
// The repository re-checks both inside its transaction, so a request that loses a
// race still gets ErrCapacityExceeded or ErrAlreadyRegistered.
func (s *attendanceService) MarkAttendance(ctx context.Context, eventID, userID int64) error {
	if err := validPair(eventID, userID); err != nil {
		return err
	}
	a, err := s.attendance(ctx, eventID)
	if err != nil {
		return err
	}
	if a.Full() {
		return domain.ErrCapacityExceeded
	}
	return s.register(ctx, eventID, userID)
}

func (s *attendanceService) RegisterForEvent(ctx context.Context, eventID, userID int64) error {
	if err := validPair(eventID, userID); err != nil {
		return err
	}
	if _, err := s.attendance(ctx, eventID); err != nil {
		return err
	}
	return s.register(ctx, eventID, userID)
}

func (s *attendanceService) register(ctx context.Context, eventID, userID int64) error {
	exists, err := s.registrationRepo.Exists(ctx, eventID, userID)
	if err != nil {
		return fmt.Errorf("check registration: %w", err)
	}
	if exists {
		return domain.ErrAlreadyRegistered
	}
	if err := s.registrationRepo.Attend(ctx, eventID, userID, s.now()); err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) || errors.Is(err, domain.ErrAlreadyRegistered) ||
			errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("attend event: %w", err)
	}
	return nil
}

func (s *attendanceService) RemoveAttendance(ctx context.Context, eventID, userID int64) error {
	if err := validPair(eventID, userID); err != nil {
		return err
	}
	a, err := s.attendance(ctx, eventID)
	if err != nil {
		return err
	}
	if a.AttendeesCount <= 0 {
		return domain.ErrNothingToRemove
	}
	if err := s.registrationRepo.Unattend(ctx, eventID, userID); err != nil {
		if errors.Is(err, domain.ErrAttendanceNotFound) {
			return err
		}
		return fmt.Errorf("unattend event: %w", err)
	}
	return nil
}

func (s *attendanceService) ToggleFavorite(ctx context.Context, eventID, userID int64) (bool, error) {
	if err := validPair(eventID, userID); err != nil {
		return false, err
	}
	exists, err := s.favoriteRepo.Exists(ctx, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	if exists {
		if err := s.favoriteRepo.Remove(ctx, eventID, userID); err != nil {
			return false, fmt.Errorf("remove favorite: %w", err)
		}
		return false, nil
	}
	fav := &domain.Favorite{UserID: userID, EventID: eventID, CreatedAt: s.now()}
	if err := s.favoriteRepo.Add(ctx, fav); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			return false, err
		}
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return true, nil
}

func (s *attendanceService) ListFavorites(ctx context.Context, userID int64) ([]*domain.Event, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	events, err := s.favoriteRepo.ListEventsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return events, nil
}

func (s *attendanceService) AttendanceStatus(ctx context.Context, userID int64) (map[int64]bool, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	ids, err := s.registrationRepo.ListEventIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	status := make(map[int64]bool, len(ids))
	for _, id := range ids {
		status[id] = true
	}
	return status, nil
}
