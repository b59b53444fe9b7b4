package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medhq/hms-api/internal/handler"
	"github.com/medhq/hms-api/internal/repository/memory"
	auditsvc "github.com/medhq/hms-api/internal/service/audit"
	authsvc "github.com/medhq/hms-api/internal/service/auth"
	"github.com/medhq/hms-api/internal/session"
	"github.com/medhq/hms-api/pkg/logger"
)

type gateFixture struct {
	engine *gin.Engine
	auth   *authsvc.Service
	codec  *session.TokenCodec
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore(time.Hour, time.Hour)
	codec := session.NewTokenCodec("gate-secret", time.Hour)
	auditor := auditsvc.NewService(memory.NewEmptyAuditRepository())
	auth, err := authsvc.NewService(store, auditor, nil, time.Hour, 0)
	require.NoError(t, err)

	log := logger.New(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})

	engine := gin.New()
	engine.Use(SessionGate(auth, codec, log))
	engine.GET("/login", func(c *gin.Context) { c.String(http.StatusOK, "login page") })
	engine.GET("/dashboard", func(c *gin.Context) {
		sess := handler.SessionFrom(c)
		require.NotNil(t, sess)
		c.String(http.StatusOK, sess.DisplayName)
	})
	engine.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "root") })

	return &gateFixture{engine: engine, auth: auth, codec: codec}
}

func (f *gateFixture) get(path string, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *gateFixture) loginCookie(t *testing.T) string {
	t.Helper()
	sessionID, _, err := f.auth.Login(context.Background(), "doctor@hospital.com", "password")
	require.NoError(t, err)
	token, err := f.codec.Sign(sessionID)
	require.NoError(t, err)
	return token
}

func TestGateAnonymousNavigation(t *testing.T) {
	f := newGateFixture(t)

	w := f.get("/dashboard", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = f.get("/", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = f.get("/login", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "login page", w.Body.String())
}

func TestGateAuthenticatedNavigation(t *testing.T) {
	f := newGateFixture(t)
	cookie := f.loginCookie(t)

	w := f.get("/dashboard", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Doctor User", w.Body.String())

	w = f.get("/login", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	w = f.get("/", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestGateTreatsBadCookieAsAnonymous(t *testing.T) {
	f := newGateFixture(t)

	for _, cookie := range []string{"garbage", f.signUnknownSession(t)} {
		w := f.get("/dashboard", cookie)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	}
}

func (f *gateFixture) signUnknownSession(t *testing.T) string {
	t.Helper()
	// Validly signed token, but the store has no such session.
	token, err := f.codec.Sign("no-such-session")
	require.NoError(t, err)
	return token
}

func TestGateLogoutInvalidatesCookie(t *testing.T) {
	f := newGateFixture(t)
	cookie := f.loginCookie(t)

	sessionID, err := f.codec.Verify(cookie)
	require.NoError(t, err)
	require.NoError(t, f.auth.Logout(context.Background(), sessionID))

	w := f.get("/dashboard", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
