package middleware

import (
	"net/http"
	"strings"
)

const (
	corsAllowMethods = "GET, POST, PATCH, DELETE, OPTIONS"
	corsAllowHeaders = "Authorization, Content-Type, Accept, X-Request-Id"
	corsMaxAge       = "86400"
)

// CORS returns middleware that adds CORS headers for allowed origins and answers
// preflight requests with 204. A "*" entry allows any origin without credentials.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	wildcard := false
	for _, o := range allowedOrigins {
		o = strings.TrimSuffix(strings.TrimSpace(o), "/")
		switch o {
		case "":
		case "*":
			wildcard = true
		default:
			allowed[o] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			hdr := w.Header()
			hdr.Add("Vary", "Origin")
			if origin != "" {
				if _, ok := allowed[origin]; ok {
					hdr.Set("Access-Control-Allow-Origin", origin)
					hdr.Set("Access-Control-Allow-Credentials", "true")
				} else if wildcard {
					hdr.Set("Access-Control-Allow-Origin", "*")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if hdr.Get("Access-Control-Allow-Origin") != "" {
					hdr.Set("Access-Control-Allow-Methods", corsAllowMethods)
					hdr.Set("Access-Control-Allow-Headers", corsAllowHeaders)
					hdr.Set("Access-Control-Max-Age", corsMaxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
