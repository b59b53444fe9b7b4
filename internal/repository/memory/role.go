package memory

import (
	"context"

	"github.com/medhq/hms-api/internal/model"
)

type RoleRepository struct {
	records *collection[model.StaffRole]
}

func NewRoleRepository() *RoleRepository {
	return &RoleRepository{
		records: newCollection(func(r model.StaffRole) string { return r.ID }, seedRoles()),
	}
}

func (r *RoleRepository) List(ctx context.Context) ([]model.StaffRole, error) {
	return r.records.list(), nil
}

func (r *RoleRepository) Get(ctx context.Context, id string) (*model.StaffRole, error) {
	role, err := r.records.get(id)
	if err != nil {
		return nil, err
	}
	return &role, nil
}
