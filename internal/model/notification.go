package model

import "time"

const (
	NotificationTypeAppointment  = "appointment"
	NotificationTypeLab          = "lab"
	NotificationTypePrescription = "prescription"
	NotificationTypeAlert        = "alert"
	NotificationTypeSystem       = "system"

	NotificationRead   = "read"
	NotificationUnread = "unread"
)

type Notification struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
	IsRead  bool      `json:"is_read"`
	SentAt  time.Time `json:"sent_at"`
}

func (n Notification) SearchText() []string { return []string{n.Title, n.Message} }

// StatusTag maps the read flag onto the read/unread selector axis.
func (n Notification) StatusTag() string {
	if n.IsRead {
		return NotificationRead
	}
	return NotificationUnread
}

func (n Notification) CategoryTag() string { return n.Type }
func (n Notification) Stamp() time.Time    { return n.SentAt }
