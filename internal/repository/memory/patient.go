package memory

import (
	"context"

	"github.com/medhq/hms-api/internal/model"
)

type PatientRepository struct {
	records *collection[model.Patient]
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{
		records: newCollection(func(p model.Patient) string { return p.ID }, seedPatients()),
	}
}

func (r *PatientRepository) List(ctx context.Context) ([]model.Patient, error) {
	return r.records.list(), nil
}

func (r *PatientRepository) Get(ctx context.Context, id string) (*model.Patient, error) {
	p, err := r.records.get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepository) Create(ctx context.Context, p *model.Patient) error {
	return r.records.insert(*p)
}

func (r *PatientRepository) Update(ctx context.Context, p *model.Patient) error {
	return r.records.update(*p)
}

func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	return r.records.remove(id)
}
