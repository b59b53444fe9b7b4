package prescription

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/medhq/hms-api/internal/derive"
	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository"
	apperrors "github.com/medhq/hms-api/pkg/errors"
)

type Service struct {
	repo repository.PrescriptionRepository
}

func NewService(repo repository.PrescriptionRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, c derive.Criteria) ([]model.Prescription, error) {
	prescriptions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return derive.Filter(prescriptions, c), nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Prescription, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("prescription", err)
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req *model.CreatePrescriptionRequest) (*model.Prescription, error) {
	p := &model.Prescription{
		ID:          uuid.New().String(),
		PatientName: req.PatientName,
		Doctor:      req.Doctor,
		Medication:  req.Medication,
		Dosage:      req.Dosage,
		Frequency:   req.Frequency,
		Duration:    req.Duration,
		Status:      model.PrescriptionStatusActive,
		IssuedOn:    time.Now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req *model.UpdatePrescriptionRequest) (*model.Prescription, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Medication != nil {
		p.Medication = *req.Medication
	}
	if req.Dosage != nil {
		p.Dosage = *req.Dosage
	}
	if req.Frequency != nil {
		p.Frequency = *req.Frequency
	}
	if req.Duration != nil {
		p.Duration = *req.Duration
	}
	if req.Status != nil {
		p.Status = *req.Status
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
