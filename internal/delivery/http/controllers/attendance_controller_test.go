package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventplanner/internal/domain"
)

func TestAttendanceController_MarkAttendance(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		identity   *domain.Identity
		svcErr     error
		wantStatus int
		wantBody   string
		wantCalls  int
	}{
		{name: "marked", target: "/api/events/4/attend", identity: member, wantStatus: http.StatusOK, wantBody: `{"message":"Attendance marked successfully!"}`, wantCalls: 1},
		{name: "no identity", target: "/api/events/4/attend", wantStatus: http.StatusUnauthorized, wantBody: `{"code":"unauthorized","message":"unauthorized"}`},
		{name: "bad event id", target: "/api/events/0/attend", identity: member, wantStatus: http.StatusBadRequest, wantBody: `{"code":"bad_request","message":"Event ID and User ID are required."}`},
		{name: "event missing", target: "/api/events/4/attend", identity: member, svcErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantBody: `{"code":"not_found","message":"Event not found."}`, wantCalls: 1},
		{name: "account gone", target: "/api/events/4/attend", identity: member, svcErr: domain.ErrUserNotFound, wantStatus: http.StatusNotFound, wantBody: `{"code":"not_found","message":"User not found."}`, wantCalls: 1},
		{name: "full", target: "/api/events/4/attend", identity: member, svcErr: domain.ErrCapacityExceeded, wantStatus: http.StatusBadRequest, wantBody: `{"code":"bad_request","message":"Event has reached its capacity."}`, wantCalls: 1},
		{name: "already marked", target: "/api/events/4/attend", identity: member, svcErr: domain.ErrAlreadyRegistered, wantStatus: http.StatusBadRequest, wantBody: `{"code":"bad_request","message":"You have already marked attendance for this event."}`, wantCalls: 1},
		{name: "store failure", target: "/api/events/4/attend", identity: member, svcErr: errors.New("deadlock detected"), wantStatus: http.StatusInternalServerError, wantBody: `{"code":"internal_error","message":"Something went wrong. Please try again later."}`, wantCalls: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAttendanceService{err: tt.svcErr}
			ctrl := NewAttendanceController(testLogger, svc)
			w := serve("POST /api/events/{id}/attend", ctrl.MarkAttendance, newRequest(http.MethodPost, tt.target, "", tt.identity))
			require.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Len(t, svc.calls, tt.wantCalls)
			if tt.wantCalls > 0 {
				assert.Equal(t, int64(4), svc.lastEvent)
				assert.Equal(t, member.UserID, svc.lastUser)
			}
		})
	}
}

func TestAttendanceController_RegisterForEvent(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantMsg    string
	}{
		{name: "registered", wantStatus: http.StatusOK, wantMsg: "Successfully registered for the event!"},
		{name: "already registered", svcErr: domain.ErrAlreadyRegistered, wantStatus: http.StatusBadRequest, wantMsg: "You are already registered for this event."},
		{name: "full", svcErr: domain.ErrCapacityExceeded, wantStatus: http.StatusBadRequest, wantMsg: "Event has reached its capacity."},
		{name: "missing", svcErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantMsg: "Event not found."},
		{name: "account gone", svcErr: domain.ErrUserNotFound, wantStatus: http.StatusNotFound, wantMsg: "User not found."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAttendanceService{err: tt.svcErr}
			ctrl := NewAttendanceController(testLogger, svc)
			w := serve("POST /api/events/{id}/register", ctrl.RegisterForEvent, newRequest(http.MethodPost, "/api/events/2/register", "", member))
			require.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
			assert.Equal(t, []string{"register"}, svc.calls)
		})
	}
}

func TestAttendanceController_RemoveAttendance(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantMsg    string
	}{
		{name: "removed", wantStatus: http.StatusOK, wantMsg: "Attendance removed successfully!"},
		{name: "nobody attending", svcErr: domain.ErrNothingToRemove, wantStatus: http.StatusBadRequest, wantMsg: "No attendees to remove."},
		{name: "not attending", svcErr: domain.ErrAttendanceNotFound, wantStatus: http.StatusNotFound, wantMsg: "No attendance record found."},
		{name: "event missing", svcErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantMsg: "Event not found."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAttendanceService{err: tt.svcErr}
			ctrl := NewAttendanceController(testLogger, svc)
			w := serve("DELETE /api/events/{id}/attend", ctrl.RemoveAttendance, newRequest(http.MethodDelete, "/api/events/2/attend", "", member))
			require.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestAttendanceController_ToggleFavorite(t *testing.T) {
	for marked, want := range map[bool]string{true: "Event marked as favorite!", false: "Event unmarked as favorite!"} {
		svc := &fakeAttendanceService{marked: marked}
		ctrl := NewAttendanceController(testLogger, svc)
		w := serve("POST /api/events/{id}/favorite", ctrl.ToggleFavorite, newRequest(http.MethodPost, "/api/events/2/favorite", "", member))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"`+want+`"}`, w.Body.String())
	}

	svc := &fakeAttendanceService{err: domain.ErrNotFound}
	w := serve("POST /api/events/{id}/favorite", NewAttendanceController(testLogger, svc).ToggleFavorite, newRequest(http.MethodPost, "/api/events/2/favorite", "", member))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Event not found.")

	svc = &fakeAttendanceService{err: domain.ErrUserNotFound}
	w = serve("POST /api/events/{id}/favorite", NewAttendanceController(testLogger, svc).ToggleFavorite, newRequest(http.MethodPost, "/api/events/2/favorite", "", member))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found.")
}

func TestAttendanceController_ListFavorites(t *testing.T) {
	t.Run("empty list is an array", func(t *testing.T) {
		ctrl := NewAttendanceController(testLogger, &fakeAttendanceService{})
		w := serve("GET /api/users/me/favorites", ctrl.ListFavorites, newRequest(http.MethodGet, "/api/users/me/favorites", "", member))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
	t.Run("events", func(t *testing.T) {
		svc := &fakeAttendanceService{favorites: []*domain.Event{{ID: 3, Title: "Gophers"}}}
		w := serve("GET /api/users/me/favorites", NewAttendanceController(testLogger, svc).ListFavorites, newRequest(http.MethodGet, "/api/users/me/favorites", "", member))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Gophers"`)
		assert.Equal(t, member.UserID, svc.lastUser)
	})
}

func TestAttendanceController_AttendanceStatus(t *testing.T) {
	svc := &fakeAttendanceService{status: map[int64]bool{3: true, 12: true}}
	ctrl := NewAttendanceController(testLogger, svc)
	w := serve("GET /api/users/me/attendance", ctrl.AttendanceStatus, newRequest(http.MethodGet, "/api/users/me/attendance", "", member))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"3":true,"12":true}`, w.Body.String())

	w = serve("GET /api/users/me/attendance", ctrl.AttendanceStatus, newRequest(http.MethodGet, "/api/users/me/attendance", "", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
