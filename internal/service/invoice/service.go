package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medhq/hms-api/internal/derive"
	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository"
	apperrors "github.com/medhq/hms-api/pkg/errors"
)

type Service struct {
	repo repository.InvoiceRepository
}

func NewService(repo repository.InvoiceRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, c derive.Criteria) ([]model.Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return derive.Filter(invoices, c), nil
}

// Summarize folds the filtered invoices into the card totals. Status
// buckets partition the set, so the three buckets always sum to Total.
func (s *Service) Summarize(invoices []model.Invoice) model.InvoiceSummary {
	amount := func(i model.Invoice) float64 { return i.Amount }
	byStatus := derive.PartitionSums(invoices, func(i model.Invoice) string { return i.Status }, amount)

	return model.InvoiceSummary{
		Total:   derive.SumBy(invoices, amount),
		Paid:    byStatus[model.InvoiceStatusPaid],
		Pending: byStatus[model.InvoiceStatusPending],
		Overdue: byStatus[model.InvoiceStatusOverdue],
	}
}

func (s *Service) Get(ctx context.Context, id string) (*model.Invoice, error) {
	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("invoice", err)
		}
		return nil, err
	}
	return inv, nil
}

func (s *Service) Create(ctx context.Context, req *model.CreateInvoiceRequest) (*model.Invoice, error) {
	inv := &model.Invoice{
		ID:          fmt.Sprintf("INV-%s", uuid.New().String()[:8]),
		PatientName: req.PatientName,
		Amount:      req.Amount,
		IssuedOn:    time.Now(),
		DueOn:       req.DueOn,
		Status:      model.InvoiceStatusPending,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}
