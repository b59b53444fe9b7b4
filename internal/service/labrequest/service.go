package labrequest

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
	repo repository.LabRequestRepository
}

func NewService(repo repository.LabRequestRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, c derive.Criteria) ([]model.LabRequest, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return derive.Filter(requests, c), nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.LabRequest, error) {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("lab request", err)
		}
		return nil, err
	}
	return l, nil
}

func (s *Service) Create(ctx context.Context, req *model.CreateLabRequestRequest) (*model.LabRequest, error) {
	l := &model.LabRequest{
		ID:          uuid.New().String(),
		PatientName: req.PatientName,
		Doctor:      req.Doctor,
		TestName:    req.TestName,
		Priority:    req.Priority,
		Status:      model.LabStatusPending,
		RequestedOn: time.Now(),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, req *model.UpdateLabRequestRequest) (*model.LabRequest, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != nil {
		l.Status = *req.Status
	}
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}
