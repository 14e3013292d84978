package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountBanned      = errors.New("account banned")
)

// BannedError is returned by Login for a banned account. It matches ErrAccountBanned with errors.Is.
type BannedError struct {
	Reason string
}

func (e *BannedError) Error() string {
	if e.Reason == "" {
		return ErrAccountBanned.Error()
	}
	return fmt.Sprintf("%s: %s", ErrAccountBanned, e.Reason)
}

func (e *BannedError) Is(target error) bool {
	return target == ErrAccountBanned
}

// User represents a registered user
// swagger:model User
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	IsBanned     bool      `json:"is_banned"`
	BanReason    *string   `json:"ban_reason"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(username, email, passwordHash string, createdAt time.Time) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}
}

// UserUpdate holds the optional profile fields of PATCH /api/users/me. Nil fields are unchanged.
type UserUpdate struct {
	Username    *string
	Description *string
	Image       *string
}

// Identity is the authenticated caller carried in the request context.
type Identity struct {
	UserID  int64
	Email   string
	IsAdmin bool
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(identity Identity) (string, error)
}

// TokenVerifier verifies a token and returns the identity it was issued for.
type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}

// BanList answers whether a user is banned without a database round trip.
type BanList interface {
	Ban(ctx context.Context, userID int64, reason string) error
	Unban(ctx context.Context, userID int64) error
	IsBanned(ctx context.Context, userID int64) (bool, error)
}

// ImageStore persists uploaded images and returns the stored file name.
type ImageStore interface {
	Save(originalName string, src io.Reader) (string, error)
	Remove(name string) error
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*User, error)
	SetBanned(ctx context.Context, id int64, banned bool, reason *string) error
}

// UserService defines the business logic for user profile, authentication and moderation.
type UserService interface {
	SignUp(ctx context.Context, username, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*User, error)
	Ban(ctx context.Context, id int64, reason string) error
	Unban(ctx context.Context, id int64) error
	RatingSummary(ctx context.Context, id int64) (*RatingSummary, error)
}
