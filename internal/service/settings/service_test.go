package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository/memory"
)

func TestGetReturnsSeededSettings(t *testing.T) {
	svc := NewService(memory.NewSettingsRepository())

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "City General Hospital", cfg.General.HospitalName)
	assert.True(t, cfg.Notifications.EmailEnabled)
	assert.Equal(t, 30, cfg.Security.SessionTimeoutMinutes)
}

func TestUpdateGeneralTouchesOnlyProvidedFields(t *testing.T) {
	svc := NewService(memory.NewSettingsRepository())
	ctx := context.Background()

	name := "Regional Medical Center"
	updated, err := svc.UpdateGeneral(ctx, &model.UpdateGeneralSettingsRequest{HospitalName: &name})
	require.NoError(t, err)

	assert.Equal(t, name, updated.General.HospitalName)
	assert.Equal(t, "HMS System", updated.General.SystemName)
	assert.Equal(t, "America/New_York", updated.General.Timezone)

	// The change persists.
	cfg, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, name, cfg.General.HospitalName)
}

func TestUpdateNotificationsToggle(t *testing.T) {
	svc := NewService(memory.NewSettingsRepository())
	ctx := context.Background()

	off := false
	updated, err := svc.UpdateNotifications(ctx, &model.UpdateNotificationSettingsRequest{EmailEnabled: &off})
	require.NoError(t, err)

	assert.False(t, updated.Notifications.EmailEnabled)
	// Untouched toggles keep their values.
	assert.True(t, updated.Notifications.AppointmentReminders)
}

func TestUpdateSecurity(t *testing.T) {
	svc := NewService(memory.NewSettingsRepository())
	ctx := context.Background()

	timeout := 60
	twoFactor := true
	updated, err := svc.UpdateSecurity(ctx, &model.UpdateSecuritySettingsRequest{
		SessionTimeoutMinutes: &timeout,
		TwoFactorRequired:     &twoFactor,
	})
	require.NoError(t, err)

	assert.Equal(t, 60, updated.Security.SessionTimeoutMinutes)
	assert.True(t, updated.Security.TwoFactorRequired)
	assert.Equal(t, 90, updated.Security.PasswordExpiryDays)
}
