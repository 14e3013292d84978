package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventplanner/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendBanNotice tells a user their account was suspended, using the "ban_notice" template.
func (s *emailService) SendBanNotice(ctx context.Context, data *domain.BanNoticeEmailData) error {
	if data == nil {
		return fmt.Errorf("ban notice data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("ban_notice", data)
	if err != nil {
		return fmt.Errorf("render ban_notice template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send ban notice: %w", err)
	}
	s.logger.InfoContext(ctx, "ban notice sent", "to", data.Email)
	return nil
}
