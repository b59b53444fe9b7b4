package notification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/medhq/hms-api/internal/derive"
	"github.com/medhq/hms-api/internal/email"
	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository"
	apperrors "github.com/medhq/hms-api/pkg/errors"
	"github.com/medhq/hms-api/pkg/logger"
)

type Service struct {
	repo     repository.NotificationRepository
	settings repository.SettingsRepository
	sender   email.Sender
	log      *logger.Logger
}

func NewService(repo repository.NotificationRepository, settings repository.SettingsRepository, sender email.Sender, log *logger.Logger) *Service {
	return &Service{repo: repo, settings: settings, sender: sender, log: log}
}

func (s *Service) List(ctx context.Context, c derive.Criteria) ([]model.Notification, error) {
	notifications, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return derive.Filter(notifications, c), nil
}

// UnreadCount counts over the full collection, not a filtered view; it is
// the badge number in the top bar.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	notifications, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return derive.CountBy(notifications, func(n model.Notification) bool { return !n.IsRead }), nil
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("notification", err)
		}
		return err
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}

// Notify appends an in-app notification and, when the notification
// settings enable it, mirrors it to email. Email failures are logged and
// swallowed; the in-app record is the source of truth.
func (s *Service) Notify(ctx context.Context, title, message, kind string) error {
	n := &model.Notification{
		ID:      uuid.New().String(),
		Title:   title,
		Message: message,
		Type:    kind,
		SentAt:  time.Now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	if cfg.Notifications.EmailEnabled && s.sender != nil {
		if err := s.sender.Send(cfg.General.Email, title, message); err != nil {
			s.log.Error(err, "failed to send notification email")
		}
	}
	return nil
}
