package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/internal/handler"
	"github.com/medhq/hms-api/internal/model"
	authsvc "github.com/medhq/hms-api/internal/service/auth"
	"github.com/medhq/hms-api/internal/session"
	"github.com/medhq/hms-api/pkg/logger"
)

// SessionGate resolves the session cookie and applies the route guard. A
// missing, expired, unverifiable or corrupt session all degrade to
// anonymous; the only hard failure is the backing store being unreachable.
func SessionGate(auth *authsvc.Service, codec *session.TokenCodec, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := resolve(c, auth, codec, log)

		switch session.Decide(sess != nil, c.Request.URL.Path) {
		case session.RenderPublic:
			c.Next()
		case session.RenderProtected:
			c.Set(handler.ContextSessionKey, sess)
			c.Next()
		case session.RedirectLogin:
			redirect(c, session.LoginPath)
		case session.RedirectDashboard:
			redirect(c, session.DashboardPath)
		}
	}
}

func resolve(c *gin.Context, auth *authsvc.Service, codec *session.TokenCodec, log *logger.Logger) *model.Session {
	token, err := c.Cookie(session.CookieName)
	if err != nil {
		return nil
	}

	sessionID, err := codec.Verify(token)
	if err != nil {
		log.Debug("discarding unverifiable session cookie")
		return nil
	}

	sess, err := auth.Resolve(c.Request.Context(), sessionID)
	if err != nil {
		log.Error(err, "session store unavailable")
		return nil
	}
	return sess
}

// redirect answers browser navigations with a real redirect and
// fetch-style clients with a JSON envelope carrying the target.
func redirect(c *gin.Context, target string) {
	if acceptsJSON(c) {
		status := http.StatusUnauthorized
		if target == session.DashboardPath {
			status = http.StatusConflict
		}
		resp := handler.NewErrorResponse("redirect")
		resp.Data = gin.H{"redirect": target}
		c.AbortWithStatusJSON(status, resp)
		return
	}
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

func acceptsJSON(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest" ||
		c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}
