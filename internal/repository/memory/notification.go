package memory

import (
	"context"

	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository"
)

type NotificationRepository struct {
	records *collection[model.Notification]
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{
		records: newCollection(func(n model.Notification) string { return n.ID }, seedNotifications()),
	}
}

func (r *NotificationRepository) List(ctx context.Context) ([]model.Notification, error) {
	return r.records.list(), nil
}

func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.records.insert(*n)
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	n, err := r.records.get(id)
	if err != nil {
		return repository.ErrNotFound
	}
	n.IsRead = true
	return r.records.update(n)
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	r.records.mutate(func(n *model.Notification) { n.IsRead = true })
	return nil
}
