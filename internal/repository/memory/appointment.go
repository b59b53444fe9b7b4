package memory

import (
	"context"

	"github.com/medhq/hms-api/internal/model"
)

type AppointmentRepository struct {
	records *collection[model.Appointment]
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{
		records: newCollection(func(a model.Appointment) string { return a.ID }, seedAppointments()),
	}
}

func (r *AppointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	return r.records.list(), nil
}

func (r *AppointmentRepository) Get(ctx context.Context, id string) (*model.Appointment, error) {
	a, err := r.records.get(id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	return r.records.insert(*a)
}

func (r *AppointmentRepository) Update(ctx context.Context, a *model.Appointment) error {
	return r.records.update(*a)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	return r.records.remove(id)
}
