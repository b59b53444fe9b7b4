package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medhq/hms-api/internal/derive"
	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository"
	apperrors "github.com/medhq/hms-api/pkg/errors"
)

// Notifier receives an in-app notification for schedule changes. The
// notification service implements it.
type Notifier interface {
	Notify(ctx context.Context, title, message, kind string) error
}

type Service struct {
	repo     repository.AppointmentRepository
	patients repository.PatientRepository
	notifier Notifier
}

func NewService(repo repository.AppointmentRepository, patients repository.PatientRepository, notifier Notifier) *Service {
	return &Service{repo: repo, patients: patients, notifier: notifier}
}

// List returns appointments matching the criteria, ordered by start time.
// Sorting is explicit and stable so same-minute bookings keep their source
// order.
func (s *Service) List(ctx context.Context, c derive.Criteria) ([]model.Appointment, error) {
	appts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := derive.Filter(appts, c)
	return derive.SortStable(filtered, func(a, b model.Appointment) bool {
		return a.StartsAt.Before(b.StartsAt)
	}), nil
}

// ListDay returns the schedule for a single calendar day.
func (s *Service) ListDay(ctx context.Context, day time.Time, c derive.Criteria) ([]model.Appointment, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24*time.Hour - time.Nanosecond)
	c.From, c.To = &from, &to
	return s.List(ctx, c)
}

// Counts buckets the filtered schedule relative to now. A day is in exactly
// one bucket, so the three counts always sum to the filtered total.
func (s *Service) Counts(ctx context.Context, c derive.Criteria, now time.Time) (*model.AppointmentCounts, error) {
	appts, err := s.List(ctx, c)
	if err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.Add(24 * time.Hour)

	counts := &model.AppointmentCounts{}
	for _, a := range appts {
		switch {
		case a.StartsAt.Before(today):
			counts.Past++
		case a.StartsAt.Before(tomorrow):
			counts.Today++
		default:
			counts.Upcoming++
		}
	}
	return counts, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Appointment, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	patient, err := s.patients.Get(ctx, req.PatientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, err
	}

	a := &model.Appointment{
		ID:          uuid.New().String(),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		StartsAt:    req.StartsAt,
		DurationMin: req.DurationMin,
		Type:        req.Type,
		Doctor:      req.Doctor,
		Status:      model.AppointmentStatusConfirmed,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx,
			"New appointment scheduled",
			fmt.Sprintf("Appointment scheduled with %s at %s", a.PatientName, a.StartsAt.Format("3:04 PM on Jan 2")),
			model.NotificationTypeAppointment,
		)
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StartsAt != nil {
		a.StartsAt = *req.StartsAt
	}
	if req.DurationMin != nil {
		a.DurationMin = *req.DurationMin
	}
	if req.Type != nil {
		a.Type = *req.Type
	}
	if req.Doctor != nil {
		a.Doctor = *req.Doctor
	}
	if req.Status != nil {
		a.Status = *req.Status
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Cancel marks an appointment cancelled rather than removing it, so the
// day's schedule keeps showing the slot.
func (s *Service) Cancel(ctx context.Context, id string) (*model.Appointment, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Status = model.AppointmentStatusCancelled
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
