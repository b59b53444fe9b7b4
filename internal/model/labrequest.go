package model

import "time"

const (
	LabStatusPending    = "Pending"
	LabStatusProcessing = "Processing"
	LabStatusCompleted  = "Completed"

	LabPriorityRoutine = "Routine"
	LabPriorityUrgent  = "Urgent"
	LabPrioritySTAT    = "STAT"
)

type LabRequest struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	Doctor      string    `json:"doctor"`
	TestName    string    `json:"test_name"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	RequestedOn time.Time `json:"requested_on"`
}

func (l LabRequest) SearchText() []string {
	return []string{l.PatientName, l.TestName, l.Doctor}
}
func (l LabRequest) StatusTag() string   { return l.Status }
func (l LabRequest) CategoryTag() string { return l.Priority }
func (l LabRequest) Stamp() time.Time    { return l.RequestedOn }

type CreateLabRequestRequest struct {
	PatientName string `json:"patient_name" binding:"required"`
	Doctor      string `json:"doctor" binding:"required"`
	TestName    string `json:"test_name" binding:"required"`
	Priority    string `json:"priority" binding:"required,oneof=Routine Urgent STAT"`
}

type UpdateLabRequestRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=Pending Processing Completed"`
}
