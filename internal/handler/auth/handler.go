package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/internal/handler"
	"github.com/medhq/hms-api/internal/model"
	authsvc "github.com/medhq/hms-api/internal/service/auth"
	"github.com/medhq/hms-api/internal/session"
	apperrors "github.com/medhq/hms-api/pkg/errors"
)

type Handler struct {
	service *authsvc.Service
	codec   *session.TokenCodec
}

func NewHandler(service *authsvc.Service, codec *session.TokenCodec) *Handler {
	return &Handler{service: service, codec: codec}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/me", h.Me)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest("invalid login request", err))
		return
	}

	sessionID, sess, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authsvc.ErrInvalidCredentials):
			handler.Error(c, apperrors.Unauthorized(err.Error(), err))
		case errors.Is(err, authsvc.ErrLoginInFlight):
			handler.Error(c, apperrors.Conflict(err.Error(), err))
		default:
			handler.Error(c, err)
		}
		return
	}

	token, err := h.codec.Sign(sessionID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, int(h.codec.TTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(sess))
}

// Logout clears both halves of the session: the stored record and the
// cookie. A request without a usable cookie still gets a fresh empty one,
// so logging out twice is harmless.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil {
		if sessionID, err := h.codec.Verify(token); err == nil {
			if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
				handler.Error(c, err)
				return
			}
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"logged_out": true}))
}

// Me returns the session behind the request's cookie, used by pages to
// render the signed-in identity.
func (h *Handler) Me(c *gin.Context) {
	sess := handler.SessionFrom(c)
	if sess == nil {
		handler.Error(c, apperrors.Unauthorized("not signed in", nil))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(sess))
}
