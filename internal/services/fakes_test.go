package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"eventplanner/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type pair struct{ eventID, userID int64 }

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	mu        sync.Mutex
	byID      map[int64]*domain.Event
	nextID    int64
	err       error
	deleteErr error
	deleted   []int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[int64]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) add(capacity, attendees int) *domain.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := &domain.Event{ID: f.nextID, Title: "Event", Capacity: capacity, AttendeesCount: attendees}
	f.byID[e.ID] = e
	f.nextID++
	return e
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = f.nextID
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context, createdBy *int64) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		if createdBy != nil && (e.CreatedBy == nil || *e.CreatedBy != *createdBy) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEventRepo) GetAttendance(ctx context.Context, id int64) (*domain.EventAttendance, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.EventAttendance{Capacity: e.Capacity, AttendeesCount: e.AttendeesCount}, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeRegistrationRepo mirrors the transactional repository against fakeEventRepo's counters.
type fakeRegistrationRepo struct {
	events  *fakeEventRepo
	regs    map[pair]time.Time
	writes  int
	err     error
	attends int
}

func newFakeRegistrationRepo(events *fakeEventRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{events: events, regs: make(map[pair]time.Time)}
}

func (f *fakeRegistrationRepo) Exists(ctx context.Context, eventID, userID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.events.mu.Lock()
	defer f.events.mu.Unlock()
	_, ok := f.regs[pair{eventID, userID}]
	return ok, nil
}

func (f *fakeRegistrationRepo) Attend(ctx context.Context, eventID, userID int64, at time.Time) error {
	f.events.mu.Lock()
	defer f.events.mu.Unlock()
	f.attends++
	e, ok := f.events.byID[eventID]
	if !ok || e.AttendeesCount >= e.Capacity {
		return domain.ErrCapacityExceeded
	}
	if _, ok := f.regs[pair{eventID, userID}]; ok {
		return domain.ErrAlreadyRegistered
	}
	e.AttendeesCount++
	f.regs[pair{eventID, userID}] = at
	f.writes++
	return nil
}

func (f *fakeRegistrationRepo) Unattend(ctx context.Context, eventID, userID int64) error {
	f.events.mu.Lock()
	defer f.events.mu.Unlock()
	if _, ok := f.regs[pair{eventID, userID}]; !ok {
		return domain.ErrAttendanceNotFound
	}
	delete(f.regs, pair{eventID, userID})
	if e, ok := f.events.byID[eventID]; ok && e.AttendeesCount > 0 {
		e.AttendeesCount--
	}
	f.writes++
	return nil
}

func (f *fakeRegistrationRepo) ListEventIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.events.mu.Lock()
	defer f.events.mu.Unlock()
	ids := make([]int64, 0)
	for p := range f.regs {
		if p.userID == userID {
			ids = append(ids, p.eventID)
		}
	}
	return ids, nil
}

type fakeFavoriteRepo struct {
	events *fakeEventRepo
	favs   map[pair]bool
	err    error
	addErr error
}

func newFakeFavoriteRepo(events *fakeEventRepo) *fakeFavoriteRepo {
	return &fakeFavoriteRepo{events: events, favs: make(map[pair]bool)}
}

func (f *fakeFavoriteRepo) Exists(ctx context.Context, eventID, userID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.favs[pair{eventID, userID}], nil
}

func (f *fakeFavoriteRepo) Add(ctx context.Context, fav *domain.Favorite) error {
	if f.addErr != nil {
		return f.addErr
	}
	if _, err := f.events.GetByID(ctx, fav.EventID); err != nil {
		return domain.ErrNotFound
	}
	f.favs[pair{fav.EventID, fav.UserID}] = true
	return nil
}

func (f *fakeFavoriteRepo) Remove(ctx context.Context, eventID, userID int64) error {
	delete(f.favs, pair{eventID, userID})
	return nil
}

func (f *fakeFavoriteRepo) ListEventsByUser(ctx context.Context, userID int64) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Event, 0)
	for p := range f.favs {
		if p.userID == userID {
			if e, err := f.events.GetByID(ctx, p.eventID); err == nil {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

type fakeCommentRepo struct {
	comments map[int64]*domain.Comment
	nextID   int64
	err      error
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*domain.Comment), nextID: 1}
}

func (f *fakeCommentRepo) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Comment, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Comment, 0)
	for _, c := range f.comments {
		if c.EventID == eventID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	if f.err != nil {
		return f.err
	}
	c.ID = f.nextID
	f.nextID++
	f.comments[c.ID] = c
	return nil
}

func (f *fakeCommentRepo) Delete(ctx context.Context, eventID, commentID int64) error {
	c, ok := f.comments[commentID]
	if !ok || c.EventID != eventID {
		return domain.ErrNotFound
	}
	delete(f.comments, commentID)
	return nil
}

type fakeUserRepo struct {
	byID   map[int64]*domain.User
	nextID int64
	err    error
	calls  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[int64]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	u.ID = f.nextID
	f.nextID++
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	f.calls++
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Username != nil {
		u.Username = *update.Username
	}
	if update.Description != nil {
		u.Description = update.Description
	}
	if update.Image != nil {
		u.Image = update.Image
	}
	return u, nil
}

func (f *fakeUserRepo) SetBanned(ctx context.Context, id int64, banned bool, reason *string) error {
	f.calls++
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsBanned = banned
	u.BanReason = reason
	return nil
}

type fakeRatingRepo struct {
	ratings map[pair]int
	events  *fakeEventRepo
	err     error
}

func newFakeRatingRepo(events *fakeEventRepo) *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[pair]int), events: events}
}

func (f *fakeRatingRepo) Upsert(ctx context.Context, r *domain.Rating) error {
	if f.err != nil {
		return f.err
	}
	f.ratings[pair{r.EventID, r.UserID}] = r.Value
	return nil
}

func (f *fakeRatingRepo) SummaryForCreator(ctx context.Context, userID int64) (*domain.RatingSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := &domain.RatingSummary{UserID: userID}
	total := 0
	for p, v := range f.ratings {
		e, err := f.events.GetByID(ctx, p.eventID)
		if err != nil || e.CreatedBy == nil || *e.CreatedBy != userID {
			continue
		}
		total += v
		s.Count++
	}
	if s.Count > 0 {
		s.Average = float64(total) / float64(s.Count)
	}
	return s, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeIssuer struct {
	last domain.Identity
	err  error
}

func (f *fakeIssuer) Issue(id domain.Identity) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.last = id
	return "token-for-" + id.Email, nil
}

type fakeBanList struct {
	banned map[int64]string
	err    error
}

func newFakeBanList() *fakeBanList {
	return &fakeBanList{banned: make(map[int64]string)}
}

func (f *fakeBanList) Ban(ctx context.Context, userID int64, reason string) error {
	if f.err != nil {
		return f.err
	}
	f.banned[userID] = reason
	return nil
}

func (f *fakeBanList) Unban(ctx context.Context, userID int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.banned, userID)
	return nil
}

func (f *fakeBanList) IsBanned(ctx context.Context, userID int64) (bool, error) {
	_, ok := f.banned[userID]
	return ok, f.err
}

type fakeEmailService struct {
	sent []*domain.BanNoticeEmailData
	err  error
}

func (f *fakeEmailService) SendBanNotice(ctx context.Context, data *domain.BanNoticeEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

type fakeImageStore struct {
	removed []string
	err     error
}

func (f *fakeImageStore) Save(originalName string, src io.Reader) (string, error) {
	return "saved-" + originalName, nil
}

func (f *fakeImageStore) Remove(name string) error {
	f.removed = append(f.removed, name)
	return f.err
}
