package model

import "time"

const (
	PrescriptionStatusActive    = "Active"
	PrescriptionStatusCompleted = "Completed"
	PrescriptionStatusExpired   = "Expired"
)

type Prescription struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	Doctor      string    `json:"doctor"`
	Medication  string    `json:"medication"`
	Dosage      string    `json:"dosage"`
	Frequency   string    `json:"frequency"`
	Duration    string    `json:"duration"`
	Status      string    `json:"status"`
	IssuedOn    time.Time `json:"issued_on"`
}

func (p Prescription) SearchText() []string {
	return []string{p.PatientName, p.Medication, p.Doctor}
}
func (p Prescription) StatusTag() string   { return p.Status }
func (p Prescription) CategoryTag() string { return "" }
func (p Prescription) Stamp() time.Time    { return p.IssuedOn }

type CreatePrescriptionRequest struct {
	PatientName string `json:"patient_name" binding:"required"`
	Doctor      string `json:"doctor" binding:"required"`
	Medication  string `json:"medication" binding:"required"`
	Dosage      string `json:"dosage" binding:"required"`
	Frequency   string `json:"frequency" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
}

type UpdatePrescriptionRequest struct {
	Medication *string `json:"medication"`
	Dosage     *string `json:"dosage"`
	Frequency  *string `json:"frequency"`
	Duration   *string `json:"duration"`
	Status     *string `json:"status" binding:"omitempty,oneof=Active Completed Expired"`
}
