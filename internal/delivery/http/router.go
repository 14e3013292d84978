package http

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"eventplanner/internal/delivery/http/controllers"
	"eventplanner/internal/delivery/http/helpers"
	"eventplanner/internal/delivery/http/middleware"
	"eventplanner/internal/domain"
)

// Router holds everything NewRouter needs to build the HTTP surface.
type Router struct {
	Logger         *slog.Logger
	Verifier       domain.TokenVerifier
	BanList        domain.BanList
	Events         *controllers.EventController
	Attendance     *controllers.AttendanceController
	Comments       *controllers.CommentController
	Users          *controllers.UserController
	UploadDir      string
	AllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes and wraps it in the middleware chain.
func NewRouter(rt Router) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(rt.Verifier, rt.BanList, rt.Logger)
	admin := func(h http.HandlerFunc) http.HandlerFunc { return auth(middleware.RequireAdmin(h)) }

	// Events
	mux.HandleFunc("POST /api/events", auth(rt.Events.CreateEvent))
	mux.HandleFunc("GET /api/events", rt.Events.ListEvents)
	mux.HandleFunc("GET /api/events/{id}", rt.Events.GetEvent)
	mux.HandleFunc("DELETE /api/events/{id}", admin(rt.Events.DeleteEvent))
	mux.HandleFunc("POST /api/events/{id}/rating", auth(rt.Events.RateEvent))

	// Attendance and favorites
	mux.HandleFunc("POST /api/events/{id}/attend", auth(rt.Attendance.MarkAttendance))
	mux.HandleFunc("DELETE /api/events/{id}/attend", auth(rt.Attendance.RemoveAttendance))
	mux.HandleFunc("POST /api/events/{id}/register", auth(rt.Attendance.RegisterForEvent))
	mux.HandleFunc("POST /api/events/{id}/favorite", auth(rt.Attendance.ToggleFavorite))

	// Comments
	mux.HandleFunc("GET /api/events/{id}/comments", rt.Comments.ListComments)
	mux.HandleFunc("POST /api/events/{id}/comments", auth(rt.Comments.AddComment))
	mux.HandleFunc("DELETE /api/events/{id}/comments/{commentId}", admin(rt.Comments.DeleteComment))

	// Users
	mux.HandleFunc("POST /api/users/register", rt.Users.SignUp)
	mux.HandleFunc("POST /api/users/login", rt.Users.Login)
	mux.HandleFunc("GET /api/users/me", auth(rt.Users.GetMe))
	mux.HandleFunc("PATCH /api/users/me", auth(rt.Users.UpdateMe))
	mux.HandleFunc("GET /api/users/me/favorites", auth(rt.Attendance.ListFavorites))
	mux.HandleFunc("GET /api/users/me/attendance", auth(rt.Attendance.AttendanceStatus))
	mux.HandleFunc("GET /api/users/{id}", rt.Users.GetUser)
	mux.HandleFunc("GET /api/users/{id}/rating", rt.Users.RatingSummary)
	mux.HandleFunc("POST /api/users/admin/ban", admin(rt.Users.Ban))
	mux.HandleFunc("POST /api/users/admin/unban", admin(rt.Users.Unban))

	// Static uploads
	if rt.UploadDir != "" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(rt.UploadDir))))
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	var h http.Handler = mux
	h = middleware.CORS(rt.AllowedOrigins)(h)
	h = chimw.Recoverer(h)
	h = middleware.LoggingMiddleware(rt.Logger, h)
	h = chimw.RealIP(h)
	h = chimw.RequestID(h)
	return h
}
