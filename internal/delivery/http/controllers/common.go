package controllers

import (
	"log/slog"
	"net/http"

	"eventplanner/internal/delivery/http/helpers"
	"eventplanner/internal/delivery/http/middleware"
	"eventplanner/internal/domain"
)

// requireIdentity returns the caller identity or writes 401.
func requireIdentity(w http.ResponseWriter, r *http.Request) (*domain.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return nil, false
	}
	return id, true
}

// internalError logs err and writes the sanitized 500 body.
func internalError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteInternalError(w)
}

func badRequest(w http.ResponseWriter, message string) {
	helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, message)
}

func notFound(w http.ResponseWriter, message string) {
	helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, message)
}
