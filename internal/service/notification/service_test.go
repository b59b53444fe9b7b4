package notification

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medhq/hms-api/internal/derive"
	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository/memory"
	"github.com/medhq/hms-api/pkg/logger"
)

type recordingSender struct {
	sent []string
	err  error
}

func (s *recordingSender) Send(to, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, subject)
	return nil
}

func newTestService(sender *recordingSender) (*Service, *memory.SettingsRepository) {
	settings := memory.NewSettingsRepository()
	log := logger.New(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	return NewService(memory.NewNotificationRepository(), settings, sender, log), settings
}

func TestUnreadCountIgnoresFilters(t *testing.T) {
	svc, _ := newTestService(&recordingSender{})
	ctx := context.Background()

	n, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, svc.MarkRead(ctx, "1"))

	n, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMarkAllRead(t *testing.T) {
	svc, _ := newTestService(&recordingSender{})
	ctx := context.Background()

	require.NoError(t, svc.MarkAllRead(ctx))

	n, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	unread, err := svc.List(ctx, derive.Criteria{Status: model.NotificationUnread})
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestListFiltersByReadStateAndType(t *testing.T) {
	svc, _ := newTestService(&recordingSender{})
	ctx := context.Background()

	unread, err := svc.List(ctx, derive.Criteria{Status: model.NotificationUnread})
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	labs, err := svc.List(ctx, derive.Criteria{Category: model.NotificationTypeLab})
	require.NoError(t, err)
	require.Len(t, labs, 1)
	assert.Equal(t, "Lab results ready", labs[0].Title)
}

func TestNotifyMirrorsToEmailWhenEnabled(t *testing.T) {
	sender := &recordingSender{}
	svc, settings := newTestService(sender)
	ctx := context.Background()

	_, err := settings.Update(ctx, func(s *model.Settings) {
		s.Notifications.EmailEnabled = true
	})
	require.NoError(t, err)

	require.NoError(t, svc.Notify(ctx, "Lab results ready", "results available", model.NotificationTypeLab))
	assert.Equal(t, []string{"Lab results ready"}, sender.sent)

	// The in-app record lands regardless of email.
	n, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestNotifySkipsEmailWhenDisabled(t *testing.T) {
	sender := &recordingSender{}
	svc, settings := newTestService(sender)
	ctx := context.Background()

	_, err := settings.Update(ctx, func(s *model.Settings) {
		s.Notifications.EmailEnabled = false
	})
	require.NoError(t, err)

	require.NoError(t, svc.Notify(ctx, "quiet", "no email", model.NotificationTypeSystem))
	assert.Empty(t, sender.sent)
}

func TestNotifySwallowsEmailFailures(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	svc, settings := newTestService(sender)
	ctx := context.Background()

	_, err := settings.Update(ctx, func(s *model.Settings) {
		s.Notifications.EmailEnabled = true
	})
	require.NoError(t, err)

	// The notification is still created.
	require.NoError(t, svc.Notify(ctx, "still lands", "in-app wins", model.NotificationTypeAlert))

	all, err := svc.List(ctx, derive.Criteria{Query: "still lands"})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
