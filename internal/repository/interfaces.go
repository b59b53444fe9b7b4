package repository

import (
	"context"
	"errors"
	"time"

	"github.com/medhq/hms-api/internal/model"
)

// ErrNotFound is returned when a requested record is not in the collection.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists is returned when a create collides with an existing ID.
var ErrAlreadyExists = errors.New("record already exists")

type PatientRepository interface {
	List(ctx context.Context) ([]model.Patient, error)
	Get(ctx context.Context, id string) (*model.Patient, error)
	Create(ctx context.Context, p *model.Patient) error
	Update(ctx context.Context, p *model.Patient) error
	Delete(ctx context.Context, id string) error
}

type AppointmentRepository interface {
	List(ctx context.Context) ([]model.Appointment, error)
	Get(ctx context.Context, id string) (*model.Appointment, error)
	Create(ctx context.Context, a *model.Appointment) error
	Update(ctx context.Context, a *model.Appointment) error
	Delete(ctx context.Context, id string) error
}

type PrescriptionRepository interface {
	List(ctx context.Context) ([]model.Prescription, error)
	Get(ctx context.Context, id string) (*model.Prescription, error)
	Create(ctx context.Context, p *model.Prescription) error
	Update(ctx context.Context, p *model.Prescription) error
}

type LabRequestRepository interface {
	List(ctx context.Context) ([]model.LabRequest, error)
	Get(ctx context.Context, id string) (*model.LabRequest, error)
	Create(ctx context.Context, l *model.LabRequest) error
	Update(ctx context.Context, l *model.LabRequest) error
}

type InvoiceRepository interface {
	List(ctx context.Context) ([]model.Invoice, error)
	Get(ctx context.Context, id string) (*model.Invoice, error)
	Create(ctx context.Context, i *model.Invoice) error
}

type NotificationRepository interface {
	List(ctx context.Context) ([]model.Notification, error)
	Create(ctx context.Context, n *model.Notification) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

type AttendanceRepository interface {
	List(ctx context.Context) ([]model.AttendanceRecord, error)
	ListRange(ctx context.Context, from, to time.Time) ([]model.AttendanceRecord, error)
	Get(ctx context.Context, id string) (*model.AttendanceRecord, error)
	Create(ctx context.Context, r *model.AttendanceRecord) error
	Update(ctx context.Context, r *model.AttendanceRecord) error
}

type RoleRepository interface {
	List(ctx context.Context) ([]model.StaffRole, error)
	Get(ctx context.Context, id string) (*model.StaffRole, error)
}

type AuditRepository interface {
	List(ctx context.Context) ([]model.AuditLog, error)
	Append(ctx context.Context, l *model.AuditLog) error
	DeleteBefore(ctx context.Context, cutoff time.Time) (int, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (model.Settings, error)
	Update(ctx context.Context, apply func(*model.Settings)) (model.Settings, error)
}
