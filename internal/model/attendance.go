package model

import "time"

const (
	AttendanceStatusPresent = "Present"
	AttendanceStatusLate    = "Late"
	AttendanceStatusAbsent  = "Absent"
)

type AttendanceRecord struct {
	ID           string     `json:"id"`
	EmployeeName string     `json:"employee_name"`
	Role         string     `json:"role"`
	Department   string     `json:"department"`
	Day          time.Time  `json:"day"`
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	Status       string     `json:"status"`
}

func (a AttendanceRecord) SearchText() []string {
	return []string{a.EmployeeName, a.Department}
}
func (a AttendanceRecord) StatusTag() string   { return a.Status }
func (a AttendanceRecord) CategoryTag() string { return a.Role }
func (a AttendanceRecord) Stamp() time.Time    { return a.Day }

type CreateAttendanceRequest struct {
	EmployeeName string    `json:"employee_name" binding:"required"`
	Role         string    `json:"role" binding:"required"`
	Department   string    `json:"department" binding:"required"`
	Day          time.Time `json:"day" binding:"required"`
}

type UpdateAttendanceRequest struct {
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	Status       *string    `json:"status" binding:"omitempty,oneof=Present Late Absent"`
}

// AttendanceReport tallies a date range per employee. The three status
// buckets are mutually exclusive per record.
type AttendanceReport struct {
	From        time.Time            `json:"from"`
	To          time.Time            `json:"to"`
	GeneratedAt time.Time            `json:"generated_at"`
	Totals      AttendanceTotals     `json:"totals"`
	PerEmployee []EmployeeAttendance `json:"per_employee"`
}

type AttendanceTotals struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
}

type EmployeeAttendance struct {
	EmployeeName string           `json:"employee_name"`
	Department   string           `json:"department"`
	Totals       AttendanceTotals `json:"totals"`
}
