package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medhq/hms-api/internal/derive"
	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository/memory"
	"github.com/medhq/hms-api/internal/service/audit"
	"github.com/medhq/hms-api/internal/session"
)

func newTestService(t *testing.T, delay time.Duration) (*Service, *audit.Service) {
	t.Helper()
	auditor := audit.NewService(memory.NewEmptyAuditRepository())
	svc, err := NewService(session.NewMemoryStore(time.Hour, time.Hour), auditor, nil, time.Hour, delay)
	require.NoError(t, err)
	return svc, auditor
}

func TestLoginAcceptsEachDemoAccount(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	tests := []struct {
		email string
		name  string
		role  model.Role
	}{
		{"admin@hospital.com", "Admin User", model.RoleAdmin},
		{"doctor@hospital.com", "Doctor User", model.RoleDoctor},
		{"nurse@hospital.com", "Nurse User", model.RoleNurse},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			sessionID, sess, err := svc.Login(ctx, tt.email, "password")
			require.NoError(t, err)
			require.NotEmpty(t, sessionID)

			assert.Equal(t, tt.name, sess.DisplayName)
			assert.Equal(t, tt.email, sess.Email)
			assert.Equal(t, tt.role, sess.Role)

			// The stored record matches what Login returned.
			resolved, err := svc.Resolve(ctx, sessionID)
			require.NoError(t, err)
			assert.Equal(t, sess, resolved)
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "doctor@hospital.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "stranger@hospital.com", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Case matters for the email key.
	_, _, err = svc.Login(ctx, "Doctor@hospital.com", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginFailureIsAudited(t *testing.T) {
	svc, auditor := newTestService(t, 0)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "doctor@hospital.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	logs, err := auditor.List(ctx, derive.Criteria{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "login", logs[0].Action)
	assert.Equal(t, model.AuditStatusFailure, logs[0].Status)
}

func TestLoginHonorsCancellation(t *testing.T) {
	svc, auditor := newTestService(t, 200*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, _, err := svc.Login(ctx, "doctor@hospital.com", "password")
	assert.ErrorIs(t, err, context.Canceled)

	// An abandoned attempt leaves no trace.
	logs, err := auditor.List(context.Background(), derive.Criteria{})
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestLoginRejectsConcurrentAttemptForSameEmail(t *testing.T) {
	svc, _ := newTestService(t, 150*time.Millisecond)
	ctx := context.Background()

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, _, err := svc.Login(ctx, "doctor@hospital.com", "password")
		done <- err
	}()

	<-started
	time.Sleep(30 * time.Millisecond)

	_, _, err := svc.Login(ctx, "doctor@hospital.com", "password")
	assert.ErrorIs(t, err, ErrLoginInFlight)

	// A different account is not blocked.
	_, _, err = svc.Login(ctx, "nurse@hospital.com", "password")
	assert.NoError(t, err)

	assert.NoError(t, <-done)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	sessionID, _, err := svc.Login(ctx, "admin@hospital.com", "password")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sessionID))
	require.NoError(t, svc.Logout(ctx, sessionID))

	sess, err := svc.Resolve(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestResolveUnknownSessionIsAnonymous(t *testing.T) {
	svc, _ := newTestService(t, 0)

	sess, err := svc.Resolve(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, sess)
}
