package memory

import (
	"context"
	"sync"

	"github.com/medhq/hms-api/internal/model"
)

type SettingsRepository struct {
	mu       sync.RWMutex
	settings model.Settings
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{settings: seedSettings()}
}

func (r *SettingsRepository) Get(ctx context.Context) (model.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings, nil
}

func (r *SettingsRepository) Update(ctx context.Context, apply func(*model.Settings)) (model.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	apply(&r.settings)
	return r.settings, nil
}
