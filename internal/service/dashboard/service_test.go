package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medhq/hms-api/internal/repository/memory"
)

func TestStats(t *testing.T) {
	svc := NewService(
		memory.NewPatientRepository(),
		memory.NewAppointmentRepository(),
		memory.NewNotificationRepository(),
		memory.NewInvoiceRepository(),
	)

	now := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	stats, err := svc.Stats(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 7, stats.Patients)
	assert.Equal(t, 4, stats.AppointmentsToday)
	assert.Equal(t, 2, stats.UnreadNotifications)
	assert.InDelta(t, 595.50, stats.PendingInvoices, 1e-9)
}

func TestStatsOnAnotherDay(t *testing.T) {
	svc := NewService(
		memory.NewPatientRepository(),
		memory.NewAppointmentRepository(),
		memory.NewNotificationRepository(),
		memory.NewInvoiceRepository(),
	)

	// A day with no scheduled appointments.
	now := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)
	stats, err := svc.Stats(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, stats.AppointmentsToday)
	assert.Equal(t, 7, stats.Patients)
}
