package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventplanner/internal/domain"
)

const minPasswordLen = 8

type userService struct {
	userRepo     domain.UserRepository
	ratingRepo   domain.RatingRepository
	hasher       domain.PasswordHasher
	tokenIssuer  domain.TokenIssuer
	banList      domain.BanList
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewUserService creates a UserService with the given repositories and auth ports.
func NewUserService(
	userRepo domain.UserRepository,
	ratingRepo domain.RatingRepository,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	banList domain.BanList,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.UserService {
	return &userService{
		userRepo:     userRepo,
		ratingRepo:   ratingRepo,
		hasher:       hasher,
		tokenIssuer:  tokenIssuer,
		banList:      banList,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *userService) SignUp(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" || email == "" {
		return nil, fmt.Errorf("%w: username and email are required", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := domain.NewUser(username, email, hash, time.Now())
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks the password before the ban flag, so a banned account only learns
// its ban reason with valid credentials.
func (s *userService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrUserNotFound
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if user.IsBanned {
		reason := ""
		if user.BanReason != nil {
			reason = *user.BanReason
		}
		return "", nil, &domain.BannedError{Reason: reason}
	}

	token, err := s.tokenIssuer.Issue(domain.Identity{UserID: user.ID, Email: user.Email, IsAdmin: user.IsAdmin})
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if update.Username != nil {
		name := strings.TrimSpace(*update.Username)
		if name == "" {
			return nil, fmt.Errorf("%w: username cannot be empty", domain.ErrInvalidInput)
		}
		update.Username = &name
	}
	user, err := s.userRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Ban flags the account, adds it to the ban list so live tokens stop working, and
// sends a ban notice. Ban list and email failures are logged only.
func (s *userService) Ban(ctx context.Context, id int64, reason string) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	reason = strings.TrimSpace(reason)
	var reasonPtr *string
	if reason != "" {
		reasonPtr = &reason
	}
	if err := s.userRepo.SetBanned(ctx, id, true, reasonPtr); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("ban user: %w", err)
	}
	if err := s.banList.Ban(ctx, id, reason); err != nil {
		s.logger.ErrorContext(ctx, "ban list update failed", "user_id", id, "err", err)
	}
	s.sendBanNotice(ctx, id, reason)
	return nil
}

func (s *userService) sendBanNotice(ctx context.Context, id int64, reason string) {
	if s.emailService == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "ban notice skipped", "user_id", id, "err", err)
		return
	}
	data := &domain.BanNoticeEmailData{Email: user.Email, Username: user.Username, Reason: reason}
	if err := s.emailService.SendBanNotice(ctx, data); err != nil {
		s.logger.ErrorContext(ctx, "ban notice failed", "user_id", id, "err", err)
	}
}

func (s *userService) Unban(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	if err := s.userRepo.SetBanned(ctx, id, false, nil); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("unban user: %w", err)
	}
	if err := s.banList.Unban(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "ban list update failed", "user_id", id, "err", err)
	}
	return nil
}

func (s *userService) RatingSummary(ctx context.Context, id int64) (*domain.RatingSummary, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	summary, err := s.ratingRepo.SummaryForCreator(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("rating summary: %w", err)
	}
	return summary, nil
}
