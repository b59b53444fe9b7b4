package model

import "time"

const (
	AppointmentStatusConfirmed = "Confirmed"
	AppointmentStatusPending   = "Pending"
	AppointmentStatusCancelled = "Cancelled"
)

type Appointment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	StartsAt    time.Time `json:"starts_at"`
	DurationMin int       `json:"duration_min"`
	Type        string    `json:"type"`
	Doctor      string    `json:"doctor"`
	Status      string    `json:"status"`
}

func (a Appointment) SearchText() []string { return []string{a.PatientName, a.Doctor} }
func (a Appointment) StatusTag() string    { return a.Status }
func (a Appointment) CategoryTag() string  { return a.Type }
func (a Appointment) Stamp() time.Time     { return a.StartsAt }

type CreateAppointmentRequest struct {
	PatientID   string    `json:"patient_id" binding:"required"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	DurationMin int       `json:"duration_min" binding:"required,gt=0"`
	Type        string    `json:"type" binding:"required"`
	Doctor      string    `json:"doctor" binding:"required"`
}

type UpdateAppointmentRequest struct {
	StartsAt    *time.Time `json:"starts_at"`
	DurationMin *int       `json:"duration_min" binding:"omitempty,gt=0"`
	Type        *string    `json:"type"`
	Doctor      *string    `json:"doctor"`
	Status      *string    `json:"status" binding:"omitempty,oneof=Confirmed Pending Cancelled"`
}

// AppointmentCounts partitions a day-filtered schedule relative to now.
// The buckets are mutually exclusive.
type AppointmentCounts struct {
	Today    int `json:"today"`
	Upcoming int `json:"upcoming"`
	Past     int `json:"past"`
}
