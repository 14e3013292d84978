package controllers

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"eventplanner/internal/delivery/http/middleware"
	"eventplanner/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// serve routes a single request through a ServeMux so path values are populated.
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func newRequest(method, target, body string, identity *domain.Identity) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json")
	}
	if identity != nil {
		r = r.WithContext(middleware.SetIdentity(r.Context(), identity))
	}
	return r
}

var (
	member = &domain.Identity{UserID: 7, Email: "member@example.com"}
	admin  = &domain.Identity{UserID: 1, Email: "admin@example.com", IsAdmin: true}
)

type fakeEventService struct {
	createErr   error
	lastCreate  *domain.Event
	events      []*domain.Event
	listErr     error
	lastListBy  *int64
	event       *domain.Event
	getErr      error
	deleteErr   error
	lastDelete  int64
	rateErr     error
	lastRating  int
	lastRateFor [2]int64
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	f.lastCreate = event
	if f.createErr != nil {
		return f.createErr
	}
	event.ID = 42
	return nil
}

func (f *fakeEventService) ListEvents(ctx context.Context, createdBy *int64) ([]*domain.Event, error) {
	f.lastListBy = createdBy
	return f.events, f.listErr
}

func (f *fakeEventService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	return f.event, f.getErr
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id int64) error {
	f.lastDelete = id
	return f.deleteErr
}

func (f *fakeEventService) RateEvent(ctx context.Context, eventID, userID int64, rating int) error {
	f.lastRateFor = [2]int64{eventID, userID}
	f.lastRating = rating
	return f.rateErr
}

type fakeImageStore struct {
	saveErr error
	saved   []string
	removed []string
	data    map[string][]byte
}

func (f *fakeImageStore) Save(originalName string, src io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	b, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	name := "stored-" + originalName
	if f.data == nil {
		f.data = map[string][]byte{}
	}
	f.data[name] = b
	f.saved = append(f.saved, name)
	return name, nil
}

func (f *fakeImageStore) Remove(name string) error {
	f.removed = append(f.removed, name)
	return nil
}

type fakeAttendanceService struct {
	err       error
	marked    bool
	calls     []string
	lastEvent int64
	lastUser  int64
	favorites []*domain.Event
	status    map[int64]bool
}

func (f *fakeAttendanceService) record(name string, eventID, userID int64) {
	f.calls = append(f.calls, name)
	f.lastEvent, f.lastUser = eventID, userID
}

func (f *fakeAttendanceService) MarkAttendance(ctx context.Context, eventID, userID int64) error {
	f.record("mark", eventID, userID)
	return f.err
}

func (f *fakeAttendanceService) RemoveAttendance(ctx context.Context, eventID, userID int64) error {
	f.record("remove", eventID, userID)
	return f.err
}

func (f *fakeAttendanceService) RegisterForEvent(ctx context.Context, eventID, userID int64) error {
	f.record("register", eventID, userID)
	return f.err
}

func (f *fakeAttendanceService) ToggleFavorite(ctx context.Context, eventID, userID int64) (bool, error) {
	f.record("favorite", eventID, userID)
	return f.marked, f.err
}

func (f *fakeAttendanceService) ListFavorites(ctx context.Context, userID int64) ([]*domain.Event, error) {
	f.record("favorites", 0, userID)
	return f.favorites, f.err
}

func (f *fakeAttendanceService) AttendanceStatus(ctx context.Context, userID int64) (map[int64]bool, error) {
	f.record("status", 0, userID)
	return f.status, f.err
}

type fakeCommentService struct {
	comments   []*domain.Comment
	listErr    error
	addErr     error
	addCalls   int
	lastText   string
	deleteErr  error
	lastDelete [2]int64
}

func (f *fakeCommentService) ListComments(ctx context.Context, eventID int64) ([]*domain.Comment, error) {
	return f.comments, f.listErr
}

func (f *fakeCommentService) AddComment(ctx context.Context, eventID, userID int64, text string) (*domain.Comment, error) {
	f.addCalls++
	f.lastText = text
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &domain.Comment{ID: 3, EventID: eventID, UserID: userID, Text: text, Username: "sam"}, nil
}

func (f *fakeCommentService) DeleteComment(ctx context.Context, eventID, commentID int64) error {
	f.lastDelete = [2]int64{eventID, commentID}
	return f.deleteErr
}

type fakeUserService struct {
	signUpErr   error
	loginErr    error
	token       string
	user        *domain.User
	getErr      error
	updateErr   error
	lastUpdate  domain.UserUpdate
	banErr      error
	lastBan     int64
	lastReason  string
	unbanErr    error
	lastUnban   int64
	summary     *domain.RatingSummary
	summaryErr  error
	lastGetByID int64
}

func (f *fakeUserService) SignUp(ctx context.Context, username, email, password string) (*domain.User, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &domain.User{ID: 5, Username: username, Email: email}, nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.token, f.user, nil
}

func (f *fakeUserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	f.lastGetByID = id
	return f.user, f.getErr
}

func (f *fakeUserService) Update(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	f.lastUpdate = update
	return f.user, f.updateErr
}

func (f *fakeUserService) Ban(ctx context.Context, id int64, reason string) error {
	f.lastBan, f.lastReason = id, reason
	return f.banErr
}

func (f *fakeUserService) Unban(ctx context.Context, id int64) error {
	f.lastUnban = id
	return f.unbanErr
}

func (f *fakeUserService) RatingSummary(ctx context.Context, id int64) (*domain.RatingSummary, error) {
	return f.summary, f.summaryErr
}
