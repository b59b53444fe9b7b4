package role

import (
	"context"
	"errors"

	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository"
	apperrors "github.com/medhq/hms-api/pkg/errors"
)

type Service struct {
	repo repository.RoleRepository
}

func NewService(repo repository.RoleRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]model.StaffRole, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*model.StaffRole, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("role", err)
		}
		return nil, err
	}
	return r, nil
}
