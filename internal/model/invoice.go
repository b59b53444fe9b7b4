package model

import "time"

const (
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusPending = "Pending"
	InvoiceStatusOverdue = "Overdue"
)

type Invoice struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	Amount      float64   `json:"amount"`
	IssuedOn    time.Time `json:"issued_on"`
	DueOn       time.Time `json:"due_on"`
	Status      string    `json:"status"`
}

func (i Invoice) SearchText() []string { return []string{i.PatientName, i.ID} }
func (i Invoice) StatusTag() string    { return i.Status }
func (i Invoice) CategoryTag() string  { return "" }
func (i Invoice) Stamp() time.Time     { return i.IssuedOn }

// InvoiceSummary is the card row above the invoices list. The three status
// buckets partition the filtered set, so Paid+Pending+Overdue == Total.
type InvoiceSummary struct {
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
	Overdue float64 `json:"overdue"`
}

type CreateInvoiceRequest struct {
	PatientName string    `json:"patient_name" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	DueOn       time.Time `json:"due_on" binding:"required"`
}
