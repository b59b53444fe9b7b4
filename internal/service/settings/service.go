package settings

import (
	"context"

	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository"
)

type Service struct {
	repo repository.SettingsRepository
}

func NewService(repo repository.SettingsRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (model.Settings, error) {
	return s.repo.Get(ctx)
}

func (s *Service) UpdateGeneral(ctx context.Context, req *model.UpdateGeneralSettingsRequest) (model.Settings, error) {
	return s.repo.Update(ctx, func(cfg *model.Settings) {
		g := &cfg.General
		if req.SystemName != nil {
			g.SystemName = *req.SystemName
		}
		if req.HospitalName != nil {
			g.HospitalName = *req.HospitalName
		}
		if req.Address != nil {
			g.Address = *req.Address
		}
		if req.Phone != nil {
			g.Phone = *req.Phone
		}
		if req.Email != nil {
			g.Email = *req.Email
		}
		if req.Timezone != nil {
			g.Timezone = *req.Timezone
		}
		if req.DateFormat != nil {
			g.DateFormat = *req.DateFormat
		}
		if req.TimeFormat != nil {
			g.TimeFormat = *req.TimeFormat
		}
		if req.MaintenanceMode != nil {
			g.MaintenanceMode = *req.MaintenanceMode
		}
	})
}

func (s *Service) UpdateNotifications(ctx context.Context, req *model.UpdateNotificationSettingsRequest) (model.Settings, error) {
	return s.repo.Update(ctx, func(cfg *model.Settings) {
		n := &cfg.Notifications
		if req.EmailEnabled != nil {
			n.EmailEnabled = *req.EmailEnabled
		}
		if req.SMSEnabled != nil {
			n.SMSEnabled = *req.SMSEnabled
		}
		if req.AppointmentReminders != nil {
			n.AppointmentReminders = *req.AppointmentReminders
		}
		if req.PatientPortal != nil {
			n.PatientPortal = *req.PatientPortal
		}
	})
}

func (s *Service) UpdateSecurity(ctx context.Context, req *model.UpdateSecuritySettingsRequest) (model.Settings, error) {
	return s.repo.Update(ctx, func(cfg *model.Settings) {
		sec := &cfg.Security
		if req.SessionTimeoutMinutes != nil {
			sec.SessionTimeoutMinutes = *req.SessionTimeoutMinutes
		}
		if req.PasswordExpiryDays != nil {
			sec.PasswordExpiryDays = *req.PasswordExpiryDays
		}
		if req.TwoFactorRequired != nil {
			sec.TwoFactorRequired = *req.TwoFactorRequired
		}
	})
}
