package model

import "time"

const (
	AuditStatusSuccess = "success"
	AuditStatusFailure = "failure"
	AuditStatusWarning = "warning"

	AuditCategoryUser     = "user"
	AuditCategorySystem   = "system"
	AuditCategorySecurity = "security"
	AuditCategoryError    = "error"
)

type AuditLog struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	User       string    `json:"user"`
	UserRole   string    `json:"user_role"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	Details    string    `json:"details"`
	Status     string    `json:"status"`
	Category   string    `json:"category"`
	IPAddress  string    `json:"ip_address"`
}

func (l AuditLog) SearchText() []string {
	return []string{l.User, l.Action, l.Resource, l.Details}
}
func (l AuditLog) StatusTag() string   { return l.Status }
func (l AuditLog) CategoryTag() string { return l.Category }
func (l AuditLog) Stamp() time.Time    { return l.Timestamp }

// AuditStats is the aggregate view over a filtered set of log entries.
type AuditStats struct {
	TotalLogs      int            `json:"total_logs"`
	ActionCounts   map[string]int `json:"action_counts"`
	CategoryCounts map[string]int `json:"category_counts"`
	StatusCounts   map[string]int `json:"status_counts"`
}
