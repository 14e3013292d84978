package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "eventplanner/internal/delivery/http/helpers"
	"eventplanner/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// SetIdentity returns a context carrying the authenticated identity. Used by auth middleware.
func SetIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the authenticated identity from the context, if present.
func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*domain.Identity)
	return id, ok && id != nil
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the identity in the request context.
// A missing or malformed header is 401; a token that fails verification or belongs to a banned user is 403.
// Ban list lookups that fail are logged and the request proceeds.
func RequireAuth(verifier domain.TokenVerifier, bans domain.BanList, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			identity, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "invalid or expired token")
				return
			}
			if bans != nil {
				banned, err := bans.IsBanned(r.Context(), identity.UserID)
				if err != nil {
					logger.WarnContext(r.Context(), "ban list lookup failed", "user_id", identity.UserID, "err", err)
				} else if banned {
					h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "Account banned")
					return
				}
			}
			r = r.WithContext(SetIdentity(r.Context(), identity))
			next(w, r)
		}
	}
}

// RequireAdmin rejects callers whose identity lacks the admin flag. It must run after RequireAuth.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		if !ok {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
			return
		}
		if !id.IsAdmin {
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "admin access required")
			return
		}
		next(w, r)
	}
}
