package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventplanner/internal/domain"
)

// ErrEmptyComment is returned by AddComment for blank text. It wraps ErrInvalidInput.
var ErrEmptyComment = fmt.Errorf("%w: comment text is required", domain.ErrInvalidInput)

type commentService struct {
	commentRepo domain.CommentRepository
	userRepo    domain.UserRepository
}

func NewCommentService(commentRepo domain.CommentRepository, userRepo domain.UserRepository) domain.CommentService {
	return &commentService{commentRepo: commentRepo, userRepo: userRepo}
}

func (s *commentService) ListComments(ctx context.Context, eventID int64) ([]*domain.Comment, error) {
	if eventID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	comments, err := s.commentRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// AddComment stores the comment and fills in the author's display fields.
func (s *commentService) AddComment(ctx context.Context, eventID, userID int64, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}
	if eventID <= 0 || userID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get comment author: %w", err)
	}

	c := &domain.Comment{
		EventID:   eventID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
		Username:  author.Username,
		Avatar:    author.Image,
	}
	if err := s.commentRepo.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

func (s *commentService) DeleteComment(ctx context.Context, eventID, commentID int64) error {
	if eventID <= 0 || commentID <= 0 {
		return domain.ErrInvalidInput
	}
	if err := s.commentRepo.Delete(ctx, eventID, commentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
