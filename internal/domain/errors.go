package domain

import "errors"

// Sentinel errors shared across repositories, services and controllers.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

// Attendance errors.
var (
	ErrCapacityExceeded   = errors.New("event has reached its capacity")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
	ErrNothingToRemove    = errors.New("no attendees to remove")
	ErrAttendanceNotFound = errors.New("no attendance record found")
)
