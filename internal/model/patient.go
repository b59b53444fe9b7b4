package model

import "time"

type Patient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender"`
	Age       int       `json:"age"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	BloodType string    `json:"blood_type"`
	LastVisit time.Time `json:"last_visit"`
}

// SearchText designates name, email and phone as the free-text fields for
// the patients list.
func (p Patient) SearchText() []string { return []string{p.Name, p.Email, p.Phone} }
func (p Patient) StatusTag() string    { return "" }
func (p Patient) CategoryTag() string  { return "" }
func (p Patient) Stamp() time.Time     { return p.LastVisit }

type CreatePatientRequest struct {
	Name      string `json:"name" binding:"required"`
	Gender    string `json:"gender" binding:"required,oneof=Male Female Other"`
	Age       int    `json:"age" binding:"required,gte=0,lte=150"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	BloodType string `json:"blood_type" binding:"omitempty,bloodtype"`
}

type UpdatePatientRequest struct {
	Name      *string `json:"name"`
	Gender    *string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Age       *int    `json:"age" binding:"omitempty,gte=0,lte=150"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	BloodType *string `json:"blood_type" binding:"omitempty,bloodtype"`
}
