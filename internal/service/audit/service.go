package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medhq/hms-api/internal/derive"
	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository"
)

type Service struct {
	repo repository.AuditRepository
}

func NewService(repo repository.AuditRepository) *Service {
	return &Service{repo: repo}
}

// Entry describes an action to record on the audit trail.
type Entry struct {
	User       string
	UserRole   string
	Action     string
	Resource   string
	ResourceID string
	Details    string
	Status     string
	Category   string
	IPAddress  string
}

// Record appends an entry to the trail. Audit failures are reported to the
// caller but are not expected to abort the audited operation.
func (s *Service) Record(ctx context.Context, e Entry) error {
	if e.Status == "" {
		e.Status = model.AuditStatusSuccess
	}
	if e.Category == "" {
		e.Category = model.AuditCategoryUser
	}
	return s.repo.Append(ctx, &model.AuditLog{
		ID:         uuid.New().String(),
		Timestamp:  time.Now(),
		User:       e.User,
		UserRole:   e.UserRole,
		Action:     e.Action,
		Resource:   e.Resource,
		ResourceID: e.ResourceID,
		Details:    e.Details,
		Status:     e.Status,
		Category:   e.Category,
		IPAddress:  e.IPAddress,
	})
}

// List returns the trail filtered by c, preserving append order.
func (s *Service) List(ctx context.Context, c derive.Criteria) ([]model.AuditLog, error) {
	logs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return derive.Filter(logs, c), nil
}

// Stats aggregates the filtered trail.
func (s *Service) Stats(ctx context.Context, c derive.Criteria) (*model.AuditStats, error) {
	logs, err := s.List(ctx, c)
	if err != nil {
		return nil, err
	}
	return &model.AuditStats{
		TotalLogs:      len(logs),
		ActionCounts:   derive.PartitionCounts(logs, func(l model.AuditLog) string { return l.Action }),
		CategoryCounts: derive.PartitionCounts(logs, func(l model.AuditLog) string { return l.Category }),
		StatusCounts:   derive.PartitionCounts(logs, func(l model.AuditLog) string { return l.Status }),
	}, nil
}
