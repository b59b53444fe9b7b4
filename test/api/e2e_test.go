package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medhq/hms-api/internal/handler"
	appointmentHandler "github.com/medhq/hms-api/internal/handler/appointment"
	auditHandler "github.com/medhq/hms-api/internal/handler/audit"
	authHandler "github.com/medhq/hms-api/internal/handler/auth"
	dashboardHandler "github.com/medhq/hms-api/internal/handler/dashboard"
	invoiceHandler "github.com/medhq/hms-api/internal/handler/invoice"
	patientHandler "github.com/medhq/hms-api/internal/handler/patient"
	"github.com/medhq/hms-api/internal/middleware"
	"github.com/medhq/hms-api/internal/repository/memory"
	"github.com/medhq/hms-api/internal/router"
	appointmentService "github.com/medhq/hms-api/internal/service/appointment"
	auditService "github.com/medhq/hms-api/internal/service/audit"
	authService "github.com/medhq/hms-api/internal/service/auth"
	dashboardService "github.com/medhq/hms-api/internal/service/dashboard"
	invoiceService "github.com/medhq/hms-api/internal/service/invoice"
	patientService "github.com/medhq/hms-api/internal/service/patient"
	"github.com/medhq/hms-api/internal/session"
	"github.com/medhq/hms-api/pkg/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.New(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})

	store := session.NewMemoryStore(time.Hour, time.Hour)
	codec := session.NewTokenCodec("e2e-secret", time.Hour)

	patientRepo := memory.NewPatientRepository()
	appointmentRepo := memory.NewAppointmentRepository()
	invoiceRepo := memory.NewInvoiceRepository()
	notificationRepo := memory.NewNotificationRepository()
	auditRepo := memory.NewAuditRepository()

	auditSvc := auditService.NewService(auditRepo)
	authSvc, err := authService.NewService(store, auditSvc, nil, time.Hour, 0)
	require.NoError(t, err)
	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, nil)
	invoiceSvc := invoiceService.NewService(invoiceRepo)
	dashboardSvc := dashboardService.NewService(patientRepo, appointmentRepo, notificationRepo, invoiceRepo)

	r := router.New(
		authSvc,
		codec,
		handler.NewHealthHandler(nil),
		log,
		router.Config{
			RateLimitRPS:   1000,
			RateLimitBurst: 1000,
			CORS:           middleware.DefaultCORSConfig(),
			MetricsPrefix:  "e2e_" + strings.ReplaceAll(t.Name(), "/", "_"),
		},
		authHandler.NewHandler(authSvc, codec),
		dashboardHandler.NewHandler(dashboardSvc),
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		invoiceHandler.NewHandler(invoiceSvc),
		auditHandler.NewHandler(auditSvc),
	)
	r.Setup()
	t.Cleanup(r.Close)

	srv := httptest.NewServer(r.Engine())
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) *http.Response {
	t.Helper()
	body := strings.NewReader(`{"email":"` + email + `","password":"` + password + `"}`)
	resp, err := client.Post(baseURL+"/login", "application/json", body)
	require.NoError(t, err)
	return resp
}

func TestAnonymousVisitorIsSentToLogin(t *testing.T) {
	srv := newTestServer(t)
	client := newClient(t)

	for _, path := range []string{"/", "/dashboard", "/patients", "/audit-logs"} {
		resp, err := client.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusFound, resp.StatusCode, "path %s", path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), "path %s", path)
	}
}

func TestLoginPageRendersForAnonymousVisitors(t *testing.T) {
	srv := newTestServer(t)
	client := newClient(t)

	resp, err := client.Get(srv.URL + "/login")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnknownPathsRunThroughTheGate(t *testing.T) {
	srv := newTestServer(t)
	client := newClient(t)

	// Anonymous visitors on a bad URL land on the login page.
	resp, err := client.Get(srv.URL + "/no-such-page")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// Signed-in visitors get the plain 404.
	login(t, client, srv.URL, "nurse@hospital.com", "password").Body.Close()
	resp, err = client.Get(srv.URL + "/no-such-page")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLoginThenBrowseThenLogout(t *testing.T) {
	srv := newTestServer(t)
	client := newClient(t)

	resp := login(t, client, srv.URL, "doctor@hospital.com", "password")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Status string `json:"status"`
		Data   struct {
			DisplayName string `json:"display_name"`
			Role        string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, "Doctor User", envelope.Data.DisplayName)
	assert.Equal(t, "doctor", envelope.Data.Role)

	// The session cookie now unlocks protected pages.
	pats, err := client.Get(srv.URL + "/patients")
	require.NoError(t, err)
	pats.Body.Close()
	assert.Equal(t, http.StatusOK, pats.StatusCode)

	// A signed-in visitor cannot land on the login page again.
	back, err := client.Get(srv.URL + "/login")
	require.NoError(t, err)
	back.Body.Close()
	assert.Equal(t, http.StatusFound, back.StatusCode)
	assert.Equal(t, "/dashboard", back.Header.Get("Location"))

	out, err := client.Post(srv.URL+"/logout", "application/json", nil)
	require.NoError(t, err)
	out.Body.Close()
	assert.Equal(t, http.StatusOK, out.StatusCode)

	// After logout the same client is anonymous again.
	again, err := client.Get(srv.URL + "/patients")
	require.NoError(t, err)
	again.Body.Close()
	assert.Equal(t, http.StatusFound, again.StatusCode)
	assert.Equal(t, "/login", again.Header.Get("Location"))
}

func TestBadCredentialsAreRejected(t *testing.T) {
	srv := newTestServer(t)
	client := newClient(t)

	resp := login(t, client, srv.URL, "doctor@hospital.com", "wrong")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	guarded, err := client.Get(srv.URL + "/dashboard")
	require.NoError(t, err)
	guarded.Body.Close()
	assert.Equal(t, http.StatusFound, guarded.StatusCode)
}

func TestAuditExportDownload(t *testing.T) {
	srv := newTestServer(t)
	client := newClient(t)

	login(t, client, srv.URL, "admin@hospital.com", "password").Body.Close()

	resp, err := client.Get(srv.URL + "/audit-logs/export?format=csv")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "audit-logs-export-")
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(payload), "ID,Timestamp,User,"))
}
