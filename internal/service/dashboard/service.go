package dashboard

import (
	"context"
	"time"

	"github.com/medhq/hms-api/internal/derive"
	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository"
)

type Service struct {
	patients      repository.PatientRepository
	appointments  repository.AppointmentRepository
	notifications repository.NotificationRepository
	invoices      repository.InvoiceRepository
}

func NewService(
	patients repository.PatientRepository,
	appointments repository.AppointmentRepository,
	notifications repository.NotificationRepository,
	invoices repository.InvoiceRepository,
) *Service {
	return &Service{
		patients:      patients,
		appointments:  appointments,
		notifications: notifications,
		invoices:      invoices,
	}
}

// Stats computes the landing view's headline numbers from the live
// collections.
func (s *Service) Stats(ctx context.Context, now time.Time) (*model.DashboardStats, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notifications.List(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.Add(24 * time.Hour)

	return &model.DashboardStats{
		Patients: len(patients),
		AppointmentsToday: derive.CountBy(appointments, func(a model.Appointment) bool {
			return !a.StartsAt.Before(today) && a.StartsAt.Before(tomorrow)
		}),
		UnreadNotifications: derive.CountBy(notifications, func(n model.Notification) bool {
			return !n.IsRead
		}),
		PendingInvoices: derive.SumBy(
			derive.Filter(invoices, derive.Criteria{Status: model.InvoiceStatusPending}),
			func(i model.Invoice) float64 { return i.Amount },
		),
	}, nil
}
