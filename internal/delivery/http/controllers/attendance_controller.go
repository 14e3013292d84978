package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventplanner/internal/delivery/http/helpers"
	"eventplanner/internal/domain"
)

const (
	msgMissingIDs       = "Event ID and User ID are required."
	msgEventNotFound    = "Event not found."
	msgCapacityExceeded = "Event has reached its capacity."
)

type AttendanceController struct {
	Logger  *slog.Logger
	Service domain.AttendanceService
}

func NewAttendanceController(logger *slog.Logger, svc domain.AttendanceService) *AttendanceController {
	return &AttendanceController{Logger: logger, Service: svc}
}

// eventAndCaller reads the {id} path value and the caller. Both must be positive.
func (c *AttendanceController) eventAndCaller(w http.ResponseWriter, r *http.Request) (eventID, userID int64, ok bool) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return 0, 0, false
	}
	eventID, err := helpers.PathID(r, "id")
	if err != nil || identity.UserID <= 0 {
		badRequest(w, msgMissingIDs)
		return 0, 0, false
	}
	return eventID, identity.UserID, true
}

// MarkAttendance godoc
// @Summary Mark attendance
// @Description Registers the caller for the event while seats remain.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError "code: bad_request (capacity reached or already marked)"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/events/{id}/attend [post]
func (c *AttendanceController) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	eventID, userID, ok := c.eventAndCaller(w, r)
	if !ok {
		return
	}
	err := c.Service.MarkAttendance(r.Context(), eventID, userID)
	if c.writeRegisterError(w, r, err, "You have already marked attendance for this event.") {
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Attendance marked successfully!")
}

// RegisterForEvent godoc
// @Summary Register for an event
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError "code: bad_request (capacity reached or already registered)"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/events/{id}/register [post]
func (c *AttendanceController) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	eventID, userID, ok := c.eventAndCaller(w, r)
	if !ok {
		return
	}
	err := c.Service.RegisterForEvent(r.Context(), eventID, userID)
	if c.writeRegisterError(w, r, err, "You are already registered for this event.") {
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Successfully registered for the event!")
}

// writeRegisterError maps attend/register failures and reports whether a response was written.
func (c *AttendanceController) writeRegisterError(w http.ResponseWriter, r *http.Request, err error, alreadyMsg string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, domain.ErrInvalidInput):
		badRequest(w, msgMissingIDs)
	case errors.Is(err, domain.ErrNotFound):
		notFound(w, msgEventNotFound)
	case errors.Is(err, domain.ErrUserNotFound):
		notFound(w, msgUserNotFound)
	case errors.Is(err, domain.ErrCapacityExceeded):
		badRequest(w, msgCapacityExceeded)
	case errors.Is(err, domain.ErrAlreadyRegistered):
		badRequest(w, alreadyMsg)
	default:
		internalError(c.Logger, w, r, err)
	}
	return true
}

// RemoveAttendance godoc
// @Summary Remove attendance
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError "code: bad_request (no attendees)"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found (event or attendance record)"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/events/{id}/attend [delete]
func (c *AttendanceController) RemoveAttendance(w http.ResponseWriter, r *http.Request) {
	eventID, userID, ok := c.eventAndCaller(w, r)
	if !ok {
		return
	}
	if err := c.Service.RemoveAttendance(r.Context(), eventID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			badRequest(w, msgMissingIDs)
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, msgEventNotFound)
		case errors.Is(err, domain.ErrNothingToRemove):
			badRequest(w, "No attendees to remove.")
		case errors.Is(err, domain.ErrAttendanceNotFound):
			notFound(w, "No attendance record found.")
		default:
			internalError(c.Logger, w, r, err)
		}
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Attendance removed successfully!")
}

// ToggleFavorite godoc
// @Summary Toggle favorite
// @Description Marks the event as a favorite of the caller, or unmarks it when already marked.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/events/{id}/favorite [post]
func (c *AttendanceController) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	eventID, userID, ok := c.eventAndCaller(w, r)
	if !ok {
		return
	}
	marked, err := c.Service.ToggleFavorite(r.Context(), eventID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			badRequest(w, msgMissingIDs)
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, msgEventNotFound)
		case errors.Is(err, domain.ErrUserNotFound):
			notFound(w, msgUserNotFound)
		default:
			internalError(c.Logger, w, r, err)
		}
		return
	}
	if marked {
		helpers.WriteMessage(w, http.StatusOK, "Event marked as favorite!")
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Event unmarked as favorite!")
}

// ListFavorites godoc
// @Summary List the caller's favorite events
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Event
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/users/me/favorites [get]
func (c *AttendanceController) ListFavorites(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	events, err := c.Service.ListFavorites(r.Context(), identity.UserID)
	if err != nil {
		internalError(c.Logger, w, r, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// AttendanceStatus godoc
// @Summary Attendance status of the caller
// @Description Returns an object keyed by event id with value true for every event the caller attends.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/users/me/attendance [get]
func (c *AttendanceController) AttendanceStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	status, err := c.Service.AttendanceStatus(r.Context(), identity.UserID)
	if err != nil {
		internalError(c.Logger, w, r, err)
		return
	}
	out := make(map[string]bool, len(status))
	for id, attending := range status {
		out[strconv.FormatInt(id, 10)] = attending
	}
	helpers.WriteJSON(w, http.StatusOK, out)
}
