package memory

import (
	"context"

	"github.com/medhq/hms-api/internal/model"
)

type PrescriptionRepository struct {
	records *collection[model.Prescription]
}

func NewPrescriptionRepository() *PrescriptionRepository {
	return &PrescriptionRepository{
		records: newCollection(func(p model.Prescription) string { return p.ID }, seedPrescriptions()),
	}
}

func (r *PrescriptionRepository) List(ctx context.Context) ([]model.Prescription, error) {
	return r.records.list(), nil
}

func (r *PrescriptionRepository) Get(ctx context.Context, id string) (*model.Prescription, error) {
	p, err := r.records.get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PrescriptionRepository) Create(ctx context.Context, p *model.Prescription) error {
	return r.records.insert(*p)
}

func (r *PrescriptionRepository) Update(ctx context.Context, p *model.Prescription) error {
	return r.records.update(*p)
}

type LabRequestRepository struct {
	records *collection[model.LabRequest]
}

func NewLabRequestRepository() *LabRequestRepository {
	return &LabRequestRepository{
		records: newCollection(func(l model.LabRequest) string { return l.ID }, seedLabRequests()),
	}
}

func (r *LabRequestRepository) List(ctx context.Context) ([]model.LabRequest, error) {
	return r.records.list(), nil
}

func (r *LabRequestRepository) Get(ctx context.Context, id string) (*model.LabRequest, error) {
	l, err := r.records.get(id)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LabRequestRepository) Create(ctx context.Context, l *model.LabRequest) error {
	return r.records.insert(*l)
}

func (r *LabRequestRepository) Update(ctx context.Context, l *model.LabRequest) error {
	return r.records.update(*l)
}
