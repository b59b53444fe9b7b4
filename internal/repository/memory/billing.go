package memory

import (
	"context"

	"github.com/medhq/hms-api/internal/model"
)

type InvoiceRepository struct {
	records *collection[model.Invoice]
}

func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{
		records: newCollection(func(i model.Invoice) string { return i.ID }, seedInvoices()),
	}
}

func (r *InvoiceRepository) List(ctx context.Context) ([]model.Invoice, error) {
	return r.records.list(), nil
}

func (r *InvoiceRepository) Get(ctx context.Context, id string) (*model.Invoice, error) {
	inv, err := r.records.get(id)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, i *model.Invoice) error {
	return r.records.insert(*i)
}
