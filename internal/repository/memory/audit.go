package memory

import (
	"context"
	"time"

	"github.com/medhq/hms-api/internal/model"
)

type AuditRepository struct {
	records *collection[model.AuditLog]
}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{
		records: newCollection(func(l model.AuditLog) string { return l.ID }, seedAuditLogs()),
	}
}

// NewEmptyAuditRepository starts with no entries; used by export tests and
// deployments that only want the live trail.
func NewEmptyAuditRepository() *AuditRepository {
	return &AuditRepository{
		records: newCollection(func(l model.AuditLog) string { return l.ID }, nil),
	}
}

func (r *AuditRepository) List(ctx context.Context) ([]model.AuditLog, error) {
	return r.records.list(), nil
}

func (r *AuditRepository) Append(ctx context.Context, l *model.AuditLog) error {
	return r.records.insert(*l)
}

func (r *AuditRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int, error) {
	removed := r.records.removeIf(func(l model.AuditLog) bool {
		return l.Timestamp.Before(cutoff)
	})
	return removed, nil
}
